// Package controllers holds the HTTP layer: decode, delegate to a service,
// map domain errors to the response envelope.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/quitute/quitute/pkg/logger"
	"github.com/quitute/quitute/pkg/response"
)

// fail writes a domain error using the taxonomy mapping. Internal errors are
// masked in the response and logged with the request id.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
	}
	response.Error(w, status, apperr.Message(err))
}

// uintParam reads a chi URL parameter as uint.
func uintParam(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
