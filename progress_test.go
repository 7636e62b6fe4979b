package bintext

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressWriterCounts(t *testing.T) {
	var report bytes.Buffer
	pw := NewProgressWriter(&report, 2048, false)
	input := bytes.Repeat([]byte{1}, 1024)
	lines, _, err := Convert(io.TeeReader(bytes.NewReader(input), pw), io.Discard, hexConfig(32, 0, NoFill), nil)
	require.NoError(t, err)
	assert.Equal(t, 256, lines)
	assert.EqualValues(t, 1024, pw.Count())

	pw.Print(true)
	assert.True(t, strings.HasPrefix(report.String(), "1.00KiB / 2.00KiB (50.0%)"), report.String())
	assert.True(t, strings.HasSuffix(report.String(), "\n"))
}

func TestProgressWriterInPlace(t *testing.T) {
	var report bytes.Buffer
	pw := NewProgressWriter(&report, 0, true)
	pw.Write(make([]byte, 10))
	pw.Print(false)
	assert.True(t, strings.HasPrefix(report.String(), "\r\033[K10B "))
	assert.False(t, strings.HasSuffix(report.String(), "\n"))
}

func TestProgressStopsOnCancel(t *testing.T) {
	pw := NewProgressWriter(io.Discard, 0, false)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		pw.Progress(ctx, time.Millisecond)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("progress did not stop")
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0B", formatSize(0))
	assert.Equal(t, "1023B", formatSize(1023))
	assert.Equal(t, "1.50KiB", formatSize(1536))
	assert.Equal(t, "1.00MiB", formatSize(1<<20))
}
