// Package formsapi handles contact and quote submissions with server-side
// validation before handing them to the delivery port.
package formsapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-main/mainsite/internal/forms"
)

type FormsAPI struct {
	submitter forms.Submitter
}

func New(submitter forms.Submitter) *FormsAPI {
	return &FormsAPI{submitter: submitter}
}

func (a *FormsAPI) Routes(r chi.Router) {
	r.Post("/api/contact", a.handleContact)
	r.Post("/api/quote", a.handleQuote)
}

type okResponse struct {
	OK bool `json:"ok"`
}

type validationResponse struct {
	Errors []forms.FieldError `json:"errors"`
}

func (a *FormsAPI) handleContact(w http.ResponseWriter, r *http.Request) {
	var f forms.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	a.submit(w, r, f.Validate(), f.Submission())
}

func (a *FormsAPI) handleQuote(w http.ResponseWriter, r *http.Request) {
	var f forms.QuoteForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	a.submit(w, r, f.Validate(), f.Submission())
}

func (a *FormsAPI) submit(w http.ResponseWriter, r *http.Request, errs []forms.FieldError, s forms.Submission) {
	if len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: errs})
		return
	}
	if err := a.submitter.Submit(r.Context(), s); err != nil {
		slog.Error("form delivery failed", "kind", s.Kind, "err", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "No pudimos enviar tu solicitud. Intenta de nuevo."})
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
