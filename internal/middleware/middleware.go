package middleware

import (
	"net/http"
)

// CORSMiddleware applies the open CORS policy for the campaign widget.
// The lookup endpoint is embedded on third-party campaign pages, so any
// origin may call it; only simple GET/POST requests with a JSON body are
// expected. OPTIONS preflights are answered here with a bare 200.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
