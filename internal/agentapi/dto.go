package agentapi

// AddItemRequest adds quantity of a named item to the session cart.
type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// MessageResponse carries conversational text the dialogue driver speaks to
// the user verbatim.
type MessageResponse struct {
	Message string `json:"message"`
}

// PlaceOrderResponse is MessageResponse plus the generated order id.
type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id,omitempty"`
}

// CaseResponse is a fraud case without the verification answer — that one
// never leaves the store boundary.
type CaseResponse struct {
	UserName              string `json:"user_name"`
	SuspiciousTransaction string `json:"suspicious_transaction"`
	Status                string `json:"status"`
	Notes                 string `json:"notes,omitempty"`
	UpdatedAt             string `json:"updated_at,omitempty"`
}

// VerifyRequest carries the caller's answer to the identity question.
type VerifyRequest struct {
	Answer string `json:"answer"`
}

// VerifyResponse reports whether the caller passed verification.
type VerifyResponse struct {
	Verified bool `json:"verified"`
}

// UpdateStatusRequest resolves a fraud case.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// LeadRequest carries the lead fields collected so far.
type LeadRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	TradingExperience  string `json:"trading_experience"`
	InvestmentInterest string `json:"investment_interest"`
}

// BookSlotRequest books a 1-based demo slot for the lead.
type BookSlotRequest struct {
	LeadRequest
	Slot int `json:"slot"`
}

// QuestionRequest asks the FAQ a question.
type QuestionRequest struct {
	Question string `json:"question"`
}

// CoffeeMessageRequest is one user utterance in the coffee intake.
type CoffeeMessageRequest struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope common to every handler.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
