package httpx

import "net/http"

// MethodMux chooses a handler based on the incoming HTTP method. An
// unsupported method falls through to the generic 500 envelope, the
// same way the catch-all failure path reports it.
func MethodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h.ServeHTTP(w, r)
			return
		}
		InternalError(w, r)
	})
}
