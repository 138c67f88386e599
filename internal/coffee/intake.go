// Package coffee implements the barista agent's order intake: a linear
// field-fill conversation collecting name, drink, size, milk and extras, then
// saving the finished order to a per-customer JSON file.
package coffee

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Order is the structured record filled in over the conversation.
type Order struct {
	Name      string   `json:"name"`
	DrinkType string   `json:"drinkType"`
	Size      string   `json:"size"`
	Milk      string   `json:"milk"`
	Extras    []string `json:"extras"`
}

// Complete reports whether every required field is filled. Extras are
// optional.
func (o Order) Complete() bool {
	return o.Name != "" && o.DrinkType != "" && o.Size != "" && o.Milk != ""
}

// stage tracks which field the next user message fills.
type stage int

const (
	stageName stage = iota
	stageDrink
	stageSize
	stageMilk
	stageExtras
	stageDone
)

// Intake drives one customer's ordering conversation. Single-session,
// single-goroutine, like the grocery cart.
type Intake struct {
	ordersDir string
	order     Order
	stage     stage
}

// NewIntake returns an intake that saves finished orders into ordersDir.
func NewIntake(ordersDir string) *Intake {
	return &Intake{ordersDir: ordersDir}
}

// Order returns the record as filled so far.
func (i *Intake) Order() Order {
	return i.order
}

// Done reports whether the order has been finished and saved.
func (i *Intake) Done() bool {
	return i.stage == stageDone
}

// Handle consumes one user message and returns the agent's next line. The
// returned error is non-nil only when saving the finished order fails.
func (i *Intake) Handle(message string) (string, error) {
	text := strings.TrimSpace(message)

	switch i.stage {
	case stageName:
		i.order.Name = text
		i.stage = stageDrink
		return fmt.Sprintf("Hi %s! What drink would you like?", i.order.Name), nil

	case stageDrink:
		i.order.DrinkType = text
		i.stage = stageSize
		return "What size would you like? Small, medium, or large?", nil

	case stageSize:
		i.order.Size = text
		i.stage = stageMilk
		return "What milk would you like? Regular, oat, soy, almond, or none?", nil

	case stageMilk:
		i.order.Milk = text
		i.stage = stageExtras
		return "Any extras? Say 'no' if none.", nil

	case stageExtras:
		if !strings.EqualFold(text, "no") {
			i.order.Extras = append(i.order.Extras, text)
			return "Anything else? Or say 'no' to finish.", nil
		}
		return i.finish()

	default:
		return "Your order has already been placed. Thanks for visiting!", nil
	}
}

// finish renders the summary, saves the order and closes the intake.
func (i *Intake) finish() (string, error) {
	extras := "None"
	if len(i.order.Extras) > 0 {
		extras = strings.Join(i.order.Extras, ", ")
	}

	summary := fmt.Sprintf(
		"Here's your order summary:\nName: %s\nDrink: %s\nSize: %s\nMilk: %s\nExtras: %s",
		i.order.Name, i.order.DrinkType, i.order.Size, i.order.Milk, extras,
	)

	if err := i.save(); err != nil {
		return "", err
	}

	i.stage = stageDone
	return summary + "\n\nYour order has been saved. Thanks for visiting!", nil
}

func (i *Intake) save() error {
	if err := os.MkdirAll(i.ordersDir, 0o755); err != nil {
		return fmt.Errorf("coffee: create orders dir: %w", err)
	}

	data, err := json.MarshalIndent(i.order, "", "    ")
	if err != nil {
		return fmt.Errorf("coffee: encode order: %w", err)
	}

	name := strings.ReplaceAll(i.order.Name, string(os.PathSeparator), "-")
	path := filepath.Join(i.ordersDir, name+"_order.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("coffee: write order %q: %w", path, err)
	}
	return nil
}
