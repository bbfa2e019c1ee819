package api

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const spaEntry = "index.html"

// AssetsHandler serves the single-page app. Paths with no file behind them
// get index.html so client-side routes resolve.
type AssetsHandler struct {
	fsys       fs.FS
	fileServer http.Handler
}

// NewAssetsHandler returns a handler that answers 500 for every request when
// dir is empty.
func NewAssetsHandler(dir string) *AssetsHandler {
	if dir == "" {
		return &AssetsHandler{}
	}
	return NewAssetsHandlerFS(os.DirFS(dir))
}

func NewAssetsHandlerFS(fsys fs.FS) *AssetsHandler {
	return &AssetsHandler{
		fsys:       fsys,
		fileServer: http.FileServerFS(fsys),
	}
}

func (h *AssetsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.fsys == nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "Assets not configured")
		return
	}

	if h.exists(r.URL.Path) {
		h.fileServer.ServeHTTP(w, r)
		return
	}

	http.ServeFileFS(w, r, h.fsys, spaEntry)
}

func (h *AssetsHandler) exists(urlPath string) bool {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(h.fsys, name)
	if err != nil {
		return !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid)
	}
	if !info.IsDir() {
		return true
	}

	_, err = fs.Stat(h.fsys, path.Join(name, spaEntry))
	return err == nil
}
