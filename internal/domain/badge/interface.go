package badge

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
)

// Threshold binds a badge to the minimum signal value that earns it.
type Threshold struct {
	Name  entity.BadgeName
	Value int
}

// Scanner computes one numeric signal for a user (current streak, ratings
// given, ...) and declares which badges that signal can earn. Scanners only
// read already-persisted state; awarding is the Manager's job.
type Scanner interface {
	// Family returns the name callers use to select this scanner.
	Family() string

	// Thresholds returns the badges of this family in ascending order.
	Thresholds() []Threshold

	// Signal returns the user's current value of this family's signal.
	Signal(ctx context.Context, userID int64) (int, error)
}
