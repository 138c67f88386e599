// Package fraud defines the domain types and the store port for the
// suspicious-transaction verification workflow.
//
// A case is keyed by the customer's name (case-insensitively) and tracks a
// verification question's expected answer, the transaction under review, and
// the resolution status. Unlike the grocery ledger, case records are updated
// in place as the call progresses.
package fraud

import "time"

// Status is the resolution state of a fraud case.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmedSafe  Status = "confirmed_safe"
	StatusConfirmedFraud Status = "confirmed_fraud"
)

// Case is one row in the fraud_cases table.
type Case struct {
	// UserName identifies the customer. Lookups are case-insensitive.
	UserName string

	// VerificationAnswer is the expected answer to the identity question.
	// Compared case-insensitively and never spoken to the caller.
	VerificationAnswer string

	// SuspiciousTransaction describes the flagged transaction.
	SuspiciousTransaction string

	// Status is the current resolution state.
	Status Status

	// Notes holds the agent's free-text note from the last update.
	Notes string

	// UpdatedAt is the wall-clock time of the last status update.
	UpdatedAt time.Time
}
