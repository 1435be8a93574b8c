package renamer

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixtureImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func writeFile(t testing.TB, fpath string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(fpath), 0o755))
	require.NoError(t, os.WriteFile(fpath, data, 0o644))
}

func writePNG(t testing.TB, fpath string) {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, fixtureImage(12, 9)))
	writeFile(t, fpath, buf.Bytes())
}

func writeJPEG(t testing.TB, fpath string) {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(buf, fixtureImage(20, 10), nil))
	writeFile(t, fpath, buf.Bytes())
}

// populateTree builds two PNGs, one JPEG, a text file and a subdirectory holding another PNG
func populateTree(t testing.TB) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src")
	writePNG(t, filepath.Join(src, "a.png"))
	writePNG(t, filepath.Join(src, "b.png"))
	writeJPEG(t, filepath.Join(src, "c.jpg"))
	writeFile(t, filepath.Join(src, "notes.txt"), []byte("remember the milk\n"))
	writePNG(t, filepath.Join(src, "sub", "d.png"))
	return src
}

type recordingReporter struct {
	updates []string
	done    []string
}

func (r *recordingReporter) Update(path string) {
	r.updates = append(r.updates, path)
}

func (r *recordingReporter) Done(message string) {
	r.done = append(r.done, message)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
