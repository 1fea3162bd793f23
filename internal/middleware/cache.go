package middleware

import "net/http"

// NoCache stamps every response with cache-disabling headers so no
// browser or proxy ever replays a stale chat page or reply.
func NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate, post-check=0, pre-check=0, max-age=0")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "-1")

		next.ServeHTTP(w, r)
	})
}
