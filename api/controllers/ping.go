package controllers

import (
	"net/http"

	"github.com/avaldez/nookstop-backend/api/responses"
)

// Ping answers a bare availability probe.
func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"message": "pong"})
	}
}
