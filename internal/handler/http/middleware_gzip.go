package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/NYTimes/gziphandler"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// gzipResponses compresses every non-empty response for clients that
// accept gzip. Ciphertext does not shrink, but version and error bodies do.
var gzipResponses = mustGzipWrapper(gzip.DefaultCompression, 0)

func mustGzipWrapper(level, minSize int) func(http.Handler) http.Handler {
	wrapper, err := gziphandler.NewGzipLevelAndMinSize(level, minSize)
	if err != nil {
		panic(err)
	}
	return wrapper
}

// withGZip decodes gzip request bodies and compresses responses for clients
// that accept it. Bodyless statuses are passed through untouched.
func withGZip(next http.Handler) http.Handler {
	compressed := gzipResponses(next)

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					_ = gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
			req.ContentLength = -1
		}

		compressed.ServeHTTP(w, req)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}
