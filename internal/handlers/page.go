package handlers

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static
var staticFiles embed.FS

// RegisterPage serves the submission form at / and its assets under /public.
func RegisterPage(r chi.Router) error {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, assets, "index.html")
	})
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServerFS(assets)))

	return nil
}
