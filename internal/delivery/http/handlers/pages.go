package handlers

import (
	"net/http"
	"path/filepath"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.serveHTML(w, r, "index.html")
}

// loginPage sends clients that already hold a live session to the home page.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.auth.Lookup(r); ok {
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}
	h.serveHTML(w, r, "login", "index.html")
}

func (h *Handler) favicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/x-icon")
	http.ServeFile(w, r, filepath.Join(h.staticDir, "favicon.ico"))
}

func (h *Handler) assets() http.Handler {
	return http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(h.staticDir, "assets"))))
}

func (h *Handler) serveHTML(w http.ResponseWriter, r *http.Request, elem ...string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeFile(w, r, filepath.Join(append([]string{h.staticDir}, elem...)...))
}
