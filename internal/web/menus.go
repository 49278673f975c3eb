package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// menuHandler streams a menu PDF from local storage with a forced-download
// header. If the file cannot be read, the browser is redirected to the same
// document on the public static path instead of seeing an error.
func (s *Server) menuHandler(name, downloadName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.opts.MenusDir, name+".pdf")
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("menu file not readable, redirecting", "path", path, "err", err)
			http.Redirect(w, r, s.opts.BaseURL+"/menus/"+name+".pdf", http.StatusTemporaryRedirect)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
		_, _ = w.Write(data)
	}
}
