package bintext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	DefaultEndian     = Little
	DefaultDepth      = 32
	DefaultWords      = 256
	DefaultFill       = NoFill
	DefaultLineEnding = LF
)

// Convert reads in as consecutive words of cfg.Depth bits and writes one
// token per line to out. It returns the number of lines written and, when
// cfg.Hash is set, the digest of every byte read from in.
//
// A short final word is padded with 0xFF under FillFF and rendered as-is
// otherwise. Once in is exhausted, FillFF keeps emitting all-0xFF words until
// cfg.Words lines exist; NoFill stops right away.
func Convert(in io.Reader, out io.Writer, cfg *Config, printFn PrintFunc) (lines int, sum []byte, err error) {
	err = checkArgs(in, out, cfg)
	if err != nil {
		return
	}
	err = ValidateConfig(cfg)
	if err != nil {
		return
	}
	r := io.Reader(bufio.NewReader(in))
	h, err := newDigest(cfg.Hash)
	if err != nil {
		return
	}
	if h != nil {
		r = io.TeeReader(r, h)
	}
	w := bufio.NewWriter(out)
	defer (func() {
		if err == nil {
			if err = w.Flush(); err != nil {
				err = fmt.Errorf("write output: %w", err)
			}
		}
	})()
	if printFn != nil {
		err = printFn(cfg)
		if err != nil {
			return
		}
	}
	size := cfg.Depth / 8
	buf := make([]byte, size)
	eol := cfg.LineEnding.Terminator()
	line := make([]byte, 0, cfg.Format.TokenLen(cfg.Depth)+len(eol))
loop:
	for !cfg.Truncate || lines < cfg.Words {
		n, e := io.ReadFull(r, buf)
		chunk := buf[:n]
		switch {
		case e == nil:
		case errors.Is(e, io.ErrUnexpectedEOF):
			if cfg.Fill == FillFF {
				chunk = fillChunk(buf, n)
			}
		case errors.Is(e, io.EOF):
			if lines >= cfg.Words || cfg.Fill == NoFill {
				break loop
			}
			chunk = fillChunk(buf, 0)
		default:
			err = fmt.Errorf("read input: %w", e)
			return
		}
		line = appendToken(line[:0], chunk, cfg.Format, cfg.Endian, size)
		line = append(line, eol...)
		if _, err = w.Write(line); err != nil {
			err = fmt.Errorf("write output: %w", err)
			return
		}
		lines++
	}
	if h != nil {
		sum = h.Sum(nil)
	}
	return
}
