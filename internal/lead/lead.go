// Package lead captures qualified sales leads from the SDR agent.
//
// Saved leads go to an append-only JSONL ledger (one JSON object per line)
// and each save also drops a ready-to-send email draft next to it. Both
// writes are flushed before Save returns — the process may die between
// conversational turns.
package lead

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead is the structured record the agent fills in over the conversation.
type Lead struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	TradingExperience  string `json:"trading_experience"`
	InvestmentInterest string `json:"investment_interest"`
	BookedSlot         string `json:"booked_slot"`
}

// record is the persisted shape: the lead plus a capture timestamp.
type record struct {
	Timestamp string `json:"timestamp"`
	Lead
}

// draft is the email draft written alongside each saved lead.
type draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DemoSlots is the static list of bookable demo sessions, 1-indexed when
// spoken to the user.
var DemoSlots = []string{
	"Tomorrow at 10:00 AM IST — Platform Demo",
	"Tomorrow at 4:00 PM IST — Account Setup Assistance",
	"Day after at 11:30 AM IST — Beginners Stock Training",
}

// Store persists leads and email drafts.
type Store struct {
	leadsPath string
	draftsDir string
}

// NewStore returns a store writing the JSONL ledger to leadsPath and drafts
// into draftsDir. Directories are created on first save.
func NewStore(leadsPath, draftsDir string) *Store {
	return &Store{leadsPath: leadsPath, draftsDir: draftsDir}
}

// Save appends the lead to the ledger and writes its email draft.
func (s *Store) Save(l Lead) error {
	if err := os.MkdirAll(filepath.Dir(s.leadsPath), 0o755); err != nil {
		return fmt.Errorf("lead: create leads dir: %w", err)
	}

	rec := record{Timestamp: time.Now().Format(time.RFC3339), Lead: l}
	if rec.BookedSlot == "" {
		rec.BookedSlot = "Not booked"
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("lead: encode lead: %w", err)
	}

	f, err := os.OpenFile(s.leadsPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("lead: open ledger %q: %w", s.leadsPath, err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("lead: append to ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("lead: close ledger: %w", err)
	}

	return s.writeDraft(l)
}

// SlotSummary renders the bookable slots as a numbered list.
func SlotSummary() string {
	lines := make([]string, len(DemoSlots))
	for i, slot := range DemoSlots {
		lines[i] = fmt.Sprintf("%d. %s", i+1, slot)
	}
	return strings.Join(lines, "\n")
}

// Book records the 1-based slot choice on the lead and saves it. An
// out-of-range index comes back as conversational text with ok=false.
func (s *Store) Book(l *Lead, index int) (string, bool, error) {
	if index < 1 || index > len(DemoSlots) {
		return fmt.Sprintf("Invalid choice! Please say a number between 1 and %d.", len(DemoSlots)), false, nil
	}

	l.BookedSlot = DemoSlots[index-1]
	if err := s.Save(*l); err != nil {
		return "", false, err
	}
	return fmt.Sprintf("Booked! You're confirmed for:\n%s", l.BookedSlot), true, nil
}

func (s *Store) writeDraft(l Lead) error {
	if err := os.MkdirAll(s.draftsDir, 0o755); err != nil {
		return fmt.Errorf("lead: create drafts dir: %w", err)
	}

	first := firstName(l.Name)
	interest := l.InvestmentInterest
	if interest == "" {
		interest = "starting your investment journey"
	}
	slot := l.BookedSlot
	if slot == "" || slot == "Not booked" {
		slot = "Pick your preferred time"
	}

	d := draft{
		Subject: fmt.Sprintf("Welcome aboard, %s!", first),
		Body: fmt.Sprintf(
			"Hi %s,\n\nThanks for connecting! You mentioned interest in %s.\n\n"+
				"I have tentatively kept a demo session slot:\n-> %s\n\n"+
				"We'll help you invest confidently.\n\nRegards,\nClient Education Team",
			first, interest, slot,
		),
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("lead: encode draft: %w", err)
	}

	email := l.Email
	if email == "" {
		email = "unknown"
	}
	// UUID suffix keeps repeat saves for the same address from clobbering
	// each other.
	name := fmt.Sprintf("%s_%s.json", sanitize(email), uuid.NewString())

	path := filepath.Join(s.draftsDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("lead: write draft %q: %w", path, err)
	}
	return nil
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}

// sanitize strips path separators out of user-supplied values used in file
// names.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, string(os.PathSeparator), "-")
	return strings.ReplaceAll(s, "..", "-")
}
