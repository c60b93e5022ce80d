// internal/snapshot/snapshot.go
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/editor"
	"go-polygon-editor/pkg/render"
	"go-polygon-editor/pkg/render/ggsurf"
)

// Name is the file name used for a snapshot taken at t.
func Name(t time.Time) string {
	return "polygons-" + t.Format("20060102-150405") + ".png"
}

// Save renders the current canvas offscreen and writes it as PNG
// into the configured snapshot directory. It returns the written path.
// The rubber band follows the pointer and is left out of the image.
func Save(ed *editor.Editor, s config.Settings, t time.Time, log logrus.FieldLogger) (string, error) {
	if err := os.MkdirAll(s.SnapshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	surf := ggsurf.New(s.CanvasWidth, s.CanvasHeight, config.CanvasColor, log)
	defer surf.Close()

	sc := ed.Scene()
	sc.Cursor = nil
	render.NewRenderer(s.MarkerRadius).Render(surf, sc)
	path := filepath.Join(s.SnapshotDir, Name(t))
	if err := surf.SavePNG(path); err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"path":     path,
		"polygons": ed.Store().Len(),
	}).Info("snapshot saved")
	return path, nil
}
