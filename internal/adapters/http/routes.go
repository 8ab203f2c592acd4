package web

import "net/http"

// registerRoutes wires the site's routes onto the mux.
// The whole site lives at "/" and branches on the `page` query parameter;
// static assets are served under /static/.
func registerRoutes(mux *http.ServeMux, staticDir string) {
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.HandleFunc("/", handleSite)
}
