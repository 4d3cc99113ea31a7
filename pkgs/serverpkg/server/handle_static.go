package server

import (
	"io/fs"
	"net/http"
)

// staticHandler serves the embedded stylesheets and images under /static/
func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
