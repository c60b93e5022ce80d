// internal/event/types.go
package event

const (
	PolygonAdded      EventType = "PolygonAdded"      // Data: shape.ID нового полигона
	PolygonRemoved    EventType = "PolygonRemoved"    // Data: shape.ID
	PolygonChanged    EventType = "PolygonChanged"    // Data: shape.ID, стиль изменён
	Cleared           EventType = "Cleared"           // Data: nil
	EditTargetChanged EventType = "EditTargetChanged" // Data: shape.ID цели или nil при выходе из редактирования
)
