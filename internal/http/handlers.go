package http

import (
	"errors"
	"net/http"

	"golang-ipcalc/internal/pkg/ipcalc"
)

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleGetSubnet computes the subnet report for the cidr query
// parameter. Format violations map to the same two messages the CLI
// prints.
func (a *API) handleGetSubnet(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("cidr")

	cidr, err := ipcalc.Parse(raw)
	if err != nil {
		msg := "Error"
		if errors.Is(err, ipcalc.ErrMissingPrefix) {
			msg = "Missing prefix"
		}
		a.Logger.WithError(err).WithField("cidr", raw).Warn("Rejected subnet request")
		if err := encode(w, http.StatusBadRequest, ErrorResponse{Error: msg}); err != nil {
			a.Logger.WithError(err).Error("Failed to encode error response")
		}
		return
	}

	a.Logger.WithField("cidr", cidr.String()).Debug("Computed subnet report")
	if err := encode(w, http.StatusOK, subnetToResponse(cidr)); err != nil {
		a.Logger.WithError(err).Error("Failed to encode subnet response")
	}
}
