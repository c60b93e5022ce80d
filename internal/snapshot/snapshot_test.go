package snapshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/editor"
)

func TestName(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "polygons-20250102-030405.png", Name(at))
}

func TestSaveWritesCanvas(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := config.Default()
	s.SnapshotDir = filepath.Join(t.TempDir(), "shots")
	ed := editor.New(nil, editor.OptionsFromSettings(s), logger)
	for _, p := range [][2]float64{{10, 10}, {100, 10}, {100, 100}, {11, 11}} {
		ed.Press(p[0], p[1], editor.ButtonPrimary)
		ed.Release(editor.ButtonPrimary)
	}

	path, err := Save(ed, s, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), logger)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.SnapshotDir, "polygons-20250102-030405.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, s.CanvasWidth, img.Bounds().Dx())
	assert.Equal(t, s.CanvasHeight, img.Bounds().Dy())

	r, g, b, _ := img.At(80, 30).RGBA()
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255})
	assert.Equal(t, "snapshot saved", hook.LastEntry().Message)
	assert.Equal(t, 1, hook.LastEntry().Data["polygons"])
}

func pixel(t *testing.T, path string, x, y int) color.RGBA {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestSaveLeavesOutRubberBand(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	s := config.Default()
	s.SnapshotDir = t.TempDir()
	ed := editor.New(nil, editor.OptionsFromSettings(s), logger)
	ed.SetLineWidth(4)
	for _, p := range [][2]float64{{10, 50}, {150, 50}} {
		ed.Press(p[0], p[1], editor.ButtonPrimary)
		ed.Release(editor.ButtonPrimary)
	}
	ed.Move(150, 120)
	require.NotNil(t, ed.Scene().Cursor, "the live view shows the rubber band")

	path, err := Save(ed, s, time.Now(), logger)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, pixel(t, path, 80, 50), "draft polyline is kept")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixel(t, path, 150, 90), "rubber band is not")
	assert.Equal(t, 2, ed.Store().DraftLen())
}

func TestSaveFailsOnBadDir(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := config.Default()
	s.SnapshotDir = filepath.Join(blocker, "sub")
	ed := editor.New(nil, editor.OptionsFromSettings(s), logger)
	_, err := Save(ed, s, time.Now(), logger)
	assert.ErrorContains(t, err, "create snapshot dir")
}
