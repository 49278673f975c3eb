// Package trackapi exposes the tracking-lookup proxy: it hides the external
// directory's credentials and field naming behind one JSON endpoint.
package trackapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/grupo-main/mainsite/internal/models"
	"github.com/grupo-main/mainsite/internal/services/shipments"
)

type TrackAPI struct {
	svc *shipments.Service
}

func New(svc *shipments.Service) *TrackAPI {
	return &TrackAPI{svc: svc}
}

func (a *TrackAPI) Routes(r chi.Router) {
	r.Get("/api/track", a.handleTrack)
}

type trackResponse struct {
	Found    bool             `json:"found"`
	Shipment *models.Shipment `json:"shipment"`
}

type errorResponse struct {
	Error string `json:"error"`
	Found *bool  `json:"found,omitempty"`
}

func (a *TrackAPI) handleTrack(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("trackingNumber")

	sh, err := a.svc.Lookup(r.Context(), code)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, trackResponse{Found: true, Shipment: sh})
	case errors.Is(err, shipments.ErrMissingCode):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Se requiere un número de guía"})
	case errors.Is(err, shipments.ErrCodeTooShort):
		msg := fmt.Sprintf("El número de guía debe tener al menos %d caracteres", a.svc.MinCodeLength())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
	case errors.Is(err, shipments.ErrCodeInvalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Ingresa un número de guía válido"})
	case errors.Is(err, shipments.ErrNotFound):
		notFound := false
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Envío no encontrado", Found: &notFound})
	default:
		// Upstream detail is logged here and never echoed to the browser.
		slog.Error("tracking lookup failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error al consultar el servicio de rastreo"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
