package commands

import (
	"errors"
	"time"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrSeedDemoDataCommandIsNotConstructed = errors.New(
	"SeedDemoDataCommand must be created via NewSeedDemoDataCommand constructor",
)

// SeedDemoDataCommand represents a request to populate an empty database with
// the fabricated demonstration data set. The seed pins the random draw
// sequence, and today anchors the generated order timeline.
type SeedDemoDataCommand struct { //nolint:recvcheck //using for validation
	seed  int64
	today time.Time

	guard guard.ConstructorGuard
}

// NewSeedDemoDataCommand creates a command to seed demo data.
// Validates that the anchor day is set; any seed value is acceptable.
func NewSeedDemoDataCommand(seed int64, today time.Time) (SeedDemoDataCommand, error) {
	seedCommand := SeedDemoDataCommand{
		guard: guard.NewConstructorGuard(),
	}

	if today.IsZero() {
		return SeedDemoDataCommand{}, errs.NewValueIsRequiredError("today")
	}

	seedCommand.seed = seed
	seedCommand.today = today
	return seedCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSeedDemoDataCommandIsNotConstructed if validation fails.
func (c SeedDemoDataCommand) Validate() error {
	return c.guard.Validate(ErrSeedDemoDataCommandIsNotConstructed)
}

// Seed returns the random source seed for the generator.
func (c SeedDemoDataCommand) Seed() int64 {
	return c.seed
}

// Today returns the calendar day the generated timeline is anchored on.
func (c SeedDemoDataCommand) Today() time.Time {
	return c.today
}
