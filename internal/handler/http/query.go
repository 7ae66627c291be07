package http

import (
	"net/http"
	"strconv"
)

// Query parameter helpers shared by the handlers.

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

func queryBool(r *http.Request, key string) bool {
	v := r.URL.Query().Get(key)
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
