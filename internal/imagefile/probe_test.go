package imagefile

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyImages(t *testing.T) {
	dir := t.TempDir()
	img := fixtureImage()

	tests := []struct {
		name     string
		format   Format
		expected Kind
	}{
		{name: "photo.png", format: FormatPNG, expected: "png"},
		{name: "photo.jpg", format: FormatJPEG, expected: "jpeg"},
		{name: "photo.webp", format: FormatWebP, expected: "webp"},
		// content decides, not the extension
		{name: "mislabeled.txt", format: FormatPNG, expected: "png"},
		{name: "no-extension", format: FormatJPEG, expected: "jpeg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fpath := writeFixture(t, dir, tt.name, encodeFixture(t, tt.format, img))

			kind, err := Classify(fpath)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
			assert.True(t, IsImage(fpath))
		})
	}
}

func TestClassifyNonImages(t *testing.T) {
	dir := t.TempDir()

	pngData := encodeFixture(t, FormatPNG, fixtureImage())
	randomData := make([]byte, 512)
	rand.New(rand.NewSource(42)).Read(randomData)
	randomData[0] = 0

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty.png", data: []byte{}},
		{name: "notes.txt", data: []byte("shopping list: eggs, milk\n")},
		{name: "random.jpg", data: randomData},
		{name: "truncated.png", data: pngData[:len(pngData)/2]},
		{name: "header-only.png", data: pngData[:8]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fpath := writeFixture(t, dir, tt.name, tt.data)

			kind, err := Classify(fpath)
			assert.Error(t, err)
			assert.Equal(t, NotAnImage, kind)
			assert.False(t, IsImage(fpath))
		})
	}

	t.Run("missing file", func(t *testing.T) {
		assert.False(t, IsImage(filepath.Join(dir, "does-not-exist.png")))
	})

	t.Run("directory", func(t *testing.T) {
		assert.False(t, IsImage(dir))
	})
}
