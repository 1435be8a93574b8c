package status

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForKey(t *testing.T) {
	t.Run("Reads a single byte", func(t *testing.T) {
		in := strings.NewReader("xyz")
		out := &bytes.Buffer{}

		assert.NoError(t, WaitForKey(in, out))
		assert.Equal(t, "press any key to exit...", out.String())
		assert.Equal(t, 2, in.Len())
	})

	t.Run("Closed input does not fail", func(t *testing.T) {
		assert.NoError(t, WaitForKey(strings.NewReader(""), &bytes.Buffer{}))
	})
}

func TestNopReporter(t *testing.T) {
	var r Reporter = Nop{}
	assert.NotPanics(t, func() {
		r.Update("a.png")
		r.Done("done")
	})
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

func TestSpinner(t *testing.T) {
	out := &syncBuffer{}

	spinner, err := StartSpinner(out, "starting")
	require.NoError(t, err)
	var _ Reporter = spinner

	spinner.Update("a.png")
	_, err = fmt.Fprintf(spinner, "conversion failed: %s\n", "b.png")
	require.NoError(t, err)
	spinner.Done("all done")

	text := out.String()
	assert.Contains(t, text, "processing: a.png")
	assert.Contains(t, text, clearLine+"conversion failed: b.png\n")
	assert.Contains(t, text, "all done")
	assert.Less(t, strings.Index(text, "processing: a.png"), strings.Index(text, "conversion failed: b.png"))
}
