package agentapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/voicecart/internal/agentapi/middlewares"
	"github.com/jcmexdev/voicecart/internal/fraud"
)

// FraudHandler handles the fraud-verification tool endpoints.
type FraudHandler struct {
	store fraud.Store
}

// NewFraudHandler wires the handler to a case store.
func NewFraudHandler(store fraud.Store) *FraudHandler {
	return &FraudHandler{store: store}
}

// LoadCase returns the case for the named customer, minus the verification
// answer.
func (h *FraudHandler) LoadCase(w http.ResponseWriter, r *http.Request) {
	name, ok := caseName(w, r)
	if !ok {
		return
	}

	c, err := h.store.LoadCase(r.Context(), name)
	if errors.Is(err, fraud.ErrCaseNotFound) {
		writeError(w, http.StatusNotFound, "case_not_found", "")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "case load failed", "user_name", name, "error", err)
		writeError(w, http.StatusBadGateway, "case_store_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, mapCaseToResponse(c))
}

// VerifyAnswer checks the caller's answer to the identity question.
func (h *FraudHandler) VerifyAnswer(w http.ResponseWriter, r *http.Request) {
	name, ok := caseName(w, r)
	if !ok {
		return
	}

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	verified, err := h.store.VerifyAnswer(r.Context(), name, req.Answer)
	if err != nil {
		writeError(w, http.StatusBadGateway, "case_store_error", err.Error())
		return
	}

	slog.InfoContext(r.Context(), "verification attempt",
		"user_name", name,
		"verified", verified,
		"session_id", middlewares.SessionID(r.Context()),
	)
	writeJSON(w, http.StatusOK, VerifyResponse{Verified: verified})
}

// UpdateStatus resolves the case with a status and a note.
func (h *FraudHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	name, ok := caseName(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status_required", "")
		return
	}

	err := h.store.UpdateStatus(r.Context(), name, fraud.Status(req.Status), req.Note)
	if errors.Is(err, fraud.ErrCaseNotFound) {
		writeError(w, http.StatusNotFound, "case_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, "case_store_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Case updated."})
}

func caseName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		writeError(w, http.StatusBadRequest, "user_name_required", "")
		return "", false
	}
	return name, true
}

func mapCaseToResponse(c *fraud.Case) CaseResponse {
	res := CaseResponse{
		UserName:              c.UserName,
		SuspiciousTransaction: c.SuspiciousTransaction,
		Status:                string(c.Status),
		Notes:                 c.Notes,
	}
	if !c.UpdatedAt.IsZero() {
		res.UpdatedAt = c.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return res
}
