package server

import "net/http"

// Greeting answers every request with a plain-text hello naming the server.
func Greeting(name string) http.Handler {
	body := []byte("Hello from " + name)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}
