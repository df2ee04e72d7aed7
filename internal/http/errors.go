// Package httpapi serves the product list UI over HTTP.
package httpapi

import (
	"net/http"
)

// writeHTMLError answers a page request that failed before any template output.
func writeHTMLError(w http.ResponseWriter, status int) {
	text := http.StatusText(status)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte("<!doctype html><title>" + text + "</title><h1>" + text + "</h1>\n"))
}
