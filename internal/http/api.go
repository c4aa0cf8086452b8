// Package http exposes the subnet calculator as a JSON endpoint.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// API bundles the dependencies of the HTTP handlers.
type API struct {
	Logger *logrus.Logger
}

// NewAPI creates the handler set around the given logger.
func NewAPI(logger *logrus.Logger) *API {
	return &API{Logger: logger}
}

// Router returns the route table for the API.
func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("GET /api/v1/subnet", a.handleGetSubnet)

	return mux
}

func encode[T any](w http.ResponseWriter, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
