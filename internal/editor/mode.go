// internal/editor/mode.go
package editor

import "go-polygon-editor/pkg/geom"

// Mode is an interaction mode. Pointer positions are already surface-local
// and inside the surface bounds when they reach a mode.
type Mode interface {
	Name() string
	Enter()
	Press(p geom.Point)
	Move(p geom.Point)
	Release()
	Exit()
}

// modeMachine переключает режимы: Exit старого, затем Enter нового.
type modeMachine struct {
	current Mode
}

// set выходит из текущего режима и входит в новый.
func (m *modeMachine) set(next Mode) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	if m.current != nil {
		m.current.Enter()
	}
}

func (m *modeMachine) press(p geom.Point) {
	if m.current != nil {
		m.current.Press(p)
	}
}

func (m *modeMachine) move(p geom.Point) {
	if m.current != nil {
		m.current.Move(p)
	}
}

func (m *modeMachine) release() {
	if m.current != nil {
		m.current.Release()
	}
}
