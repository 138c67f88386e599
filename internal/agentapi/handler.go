// Package agentapi exposes the agents' tool operations over HTTP. The
// dialogue driver calls these endpoints as it interprets user utterances and
// speaks the returned messages verbatim, so lookup misses and validation
// failures come back as 200s with conversational text — only real I/O
// failures become error responses.
package agentapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/voicecart/internal/faq"
	"github.com/jcmexdev/voicecart/internal/grocery/ledger"
	"github.com/jcmexdev/voicecart/internal/lead"
	"github.com/jcmexdev/voicecart/internal/pkg/cache"
)

// statusCacheTTL bounds staleness of cached order-status responses. Grocery
// order statuses never change after placement, so this is purely a guard
// against the store file being swapped underneath us.
const statusCacheTTL = 30 * time.Second

// Handler handles the grocery, lead, FAQ and coffee tool endpoints.
type Handler struct {
	sessions *Sessions
	ledger   *ledger.Ledger
	leads    *lead.Store
	faq      *faq.FAQ
	cache    cache.Cache
}

// NewHandler wires the handler with its collaborators. cache may be a
// cache.Nop when Redis is not configured.
func NewHandler(sessions *Sessions, l *ledger.Ledger, leads *lead.Store, f *faq.FAQ, c cache.Cache) *Handler {
	return &Handler{
		sessions: sessions,
		ledger:   l,
		leads:    leads,
		faq:      f,
		cache:    c,
	}
}

// AddCartItem adds an item to the session's cart.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	c := h.sessions.Cart(chi.URLParam(r, "sid"))
	res := c.AddItem(req.Name, req.Quantity)

	slog.InfoContext(r.Context(), "cart add", "session_id", chi.URLParam(r, "sid"), "name", req.Name, "ok", res.OK)
	writeJSON(w, http.StatusOK, MessageResponse{Message: res.Message})
}

// RemoveCartItem deletes a named item from the session's cart.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		writeError(w, http.StatusBadRequest, "item_name_required", "")
		return
	}

	c := h.sessions.Cart(chi.URLParam(r, "sid"))
	res := c.RemoveItem(name)
	writeJSON(w, http.StatusOK, MessageResponse{Message: res.Message})
}

// CartDetails returns the conversational cart summary.
func (h *Handler) CartDetails(w http.ResponseWriter, r *http.Request) {
	c := h.sessions.Cart(chi.URLParam(r, "sid"))
	writeJSON(w, http.StatusOK, MessageResponse{Message: c.Details()})
}

// PlaceOrder finalises the session's cart into the ledger.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	c := h.sessions.Cart(sid)

	res, err := h.ledger.PlaceOrder(r.Context(), c)
	if err != nil {
		slog.ErrorContext(r.Context(), "order placement failed", "session_id", sid, "error", err)
		writeError(w, http.StatusBadGateway, "order_store_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, PlaceOrderResponse{Message: res.Message, OrderID: res.OrderID})
}

// OrderStatus reports the status of ?order_id=, or of the latest order.
// Explicit-id responses are cached; "latest" never is, a fresh placement
// would make it stale immediately.
func (h *Handler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")

	var key string
	if orderID != "" {
		key = h.cache.GenerateKey("order_status", orderID)
		if cached, err := h.cache.Get(r.Context(), key); err == nil && cached != "" {
			writeJSON(w, http.StatusOK, MessageResponse{Message: cached})
			return
		}
	}

	msg, err := h.ledger.OrderStatus(r.Context(), orderID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "order_store_error", err.Error())
		return
	}

	if key != "" {
		if err := h.cache.Set(r.Context(), key, msg, statusCacheTTL); err != nil {
			slog.WarnContext(r.Context(), "status cache set failed", "error", err)
		}
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// EndSession discards all per-session state.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Drop(chi.URLParam(r, "sid"))
	w.WriteHeader(http.StatusNoContent)
}

// ListSlots returns the bookable demo slots as conversational text.
func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: lead.SlotSummary()})
}

// SaveLead persists the collected lead fields.
func (h *Handler) SaveLead(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	l := leadFromRequest(req)
	if err := h.leads.Save(l); err != nil {
		slog.ErrorContext(r.Context(), "lead save failed", "error", err)
		writeError(w, http.StatusBadGateway, "lead_store_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Lead saved."})
}

// BookSlot records a demo-slot booking on the lead and saves it.
func (h *Handler) BookSlot(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	l := leadFromRequest(req.LeadRequest)
	msg, _, err := h.leads.Book(&l, req.Slot)
	if err != nil {
		writeError(w, http.StatusBadGateway, "lead_store_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// AnswerQuestion answers a product question from the FAQ.
func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: h.faq.Answer(req.Question)})
}

// CoffeeMessage feeds one user utterance into the session's coffee intake.
func (h *Handler) CoffeeMessage(w http.ResponseWriter, r *http.Request) {
	var req CoffeeMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	intake := h.sessions.Intake(chi.URLParam(r, "sid"))
	reply, err := intake.Handle(req.Message)
	if err != nil {
		writeError(w, http.StatusBadGateway, "coffee_store_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: reply})
}

func leadFromRequest(req LeadRequest) lead.Lead {
	return lead.Lead{
		Name:               req.Name,
		Email:              req.Email,
		TradingExperience:  req.TradingExperience,
		InvestmentInterest: req.InvestmentInterest,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
