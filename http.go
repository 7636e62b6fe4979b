package bintext

import (
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
)

const (
	headerLines  = "X-Bintext-Lines"
	headerDigest = "X-Bintext-Digest"
)

type handler struct {
	cfg Config
}

// NewHTTPHandler returns a handler converting each POST or PUT body with cfg.
// The line count and, when cfg.Hash is set, the input digest are sent as
// trailers.
func NewHTTPHandler(cfg *Config) (http.Handler, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &handler{*cfg}, nil
}

func (h *handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		rw.Header().Set("Allow", "POST, PUT")
		http.Error(rw, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	rw.Header().Add("Trailer", headerLines)
	if h.cfg.Hash != 0 {
		rw.Header().Add("Trailer", headerDigest)
	}
	cfg := h.cfg
	w := &countWriter{w: rw}
	lines, sum, err := Convert(r.Body, w, &cfg, nil)
	if err != nil {
		if w.n == 0 {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	rw.Header().Set(headerLines, strconv.Itoa(lines))
	if sum != nil {
		rw.Header().Set(headerDigest, hex.EncodeToString(sum))
	}
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(b []byte) (n int, err error) {
	n, err = c.w.Write(b)
	c.n += int64(n)
	return
}
