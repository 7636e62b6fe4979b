package bintext

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// ProgressWriter counts the bytes written to it and reports them on out.
// Feed it the input with io.TeeReader.
type ProgressWriter struct {
	out     io.Writer
	total   int64
	inPlace bool
	start   time.Time
	n       atomic.Int64
	mu      sync.Mutex
}

// NewProgressWriter reports against total bytes; total <= 0 means unknown.
// With inPlace set each report overwrites the previous one using '\r'.
func NewProgressWriter(out io.Writer, total int64, inPlace bool) *ProgressWriter {
	return &ProgressWriter{out: out, total: total, inPlace: inPlace, start: time.Now()}
}

func (p *ProgressWriter) Write(b []byte) (int, error) {
	p.n.Add(int64(len(b)))
	return len(b), nil
}

func (p *ProgressWriter) Count() int64 {
	return p.n.Load()
}

// Progress prints a report every interval until ctx is done.
func (p *ProgressWriter) Progress(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Print(false)
		}
	}
}

func (p *ProgressWriter) Print(done bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.n.Load()
	elapsed := time.Since(p.start)
	rate := float64(0)
	if elapsed > 0 {
		rate = float64(n) / elapsed.Seconds()
	}
	prefix, suffix := "", "\n"
	if p.inPlace {
		prefix = "\r\033[K"
		if !done {
			suffix = ""
		}
	}
	if p.total > 0 {
		fmt.Fprintf(p.out, "%s%s / %s (%.1f%%) %s/s%s", prefix, formatSize(n), formatSize(p.total), float64(n)*100/float64(p.total), formatSize(int64(rate)), suffix)
	} else {
		fmt.Fprintf(p.out, "%s%s %s/s%s", prefix, formatSize(n), formatSize(int64(rate)), suffix)
	}
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
