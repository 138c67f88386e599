package agentapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/voicecart/internal/agentapi/middlewares"
)

// NewRouter mounts the grocery, lead, FAQ and coffee tool endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := newBaseRouter()

	r.Post("/sessions/{sid}/cart/items", handler.AddCartItem)
	r.Delete("/sessions/{sid}/cart/items/{name}", handler.RemoveCartItem)
	r.Get("/sessions/{sid}/cart", handler.CartDetails)
	r.Post("/sessions/{sid}/order", handler.PlaceOrder)
	r.Delete("/sessions/{sid}", handler.EndSession)
	r.Get("/orders/status", handler.OrderStatus)

	r.Get("/slots", handler.ListSlots)
	r.Post("/leads", handler.SaveLead)
	r.Post("/leads/book", handler.BookSlot)
	r.Post("/faq", handler.AnswerQuestion)
	r.Post("/coffee/{sid}", handler.CoffeeMessage)

	return r
}

// NewFraudRouter mounts the fraud-verification tool endpoints.
func NewFraudRouter(handler *FraudHandler) http.Handler {
	r := newBaseRouter()

	r.Get("/cases/{name}", handler.LoadCase)
	r.Post("/cases/{name}/verify", handler.VerifyAnswer)
	r.Post("/cases/{name}/status", handler.UpdateStatus)

	return r
}

func newBaseRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachSessionMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	return r
}
