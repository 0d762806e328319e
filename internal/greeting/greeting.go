// Package greeting selects a time-of-day greeting from an ordered rule table.
package greeting

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smartgreeting/internal/validation"
)

var (
	// ErrHourOutOfRange is returned when an explicit hour is outside 0-23.
	ErrHourOutOfRange = errors.New("hour out of range")
	// ErrInvalidTable is returned when a rule table fails validation.
	ErrInvalidTable = errors.New("invalid greeting table")
)

// Rule maps every hour strictly below UpperBound to a message and tag.
type Rule struct {
	UpperBound int
	Message    string
	Tag        string
}

// Greeting is the result of a table lookup.
type Greeting struct {
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

// Lead returns the message up to its first "!".
func (g Greeting) Lead() string {
	lead, _, _ := strings.Cut(g.Message, "!")
	return lead
}

// Table is an immutable, ordered set of rules. The first rule whose
// UpperBound exceeds the hour wins.
type Table struct {
	rules []Rule
}

// DefaultTable returns the built-in night/morning/afternoon/evening table.
func DefaultTable() *Table {
	return &Table{rules: []Rule{
		{UpperBound: 5, Message: "Good Night! 🌃", Tag: "night"},
		{UpperBound: 12, Message: "Good Morning! 🌅", Tag: "morning"},
		{UpperBound: 18, Message: "Good Afternoon! ☀️", Tag: "afternoon"},
		{UpperBound: 24, Message: "Good Evening! 🌙", Tag: "evening"},
	}}
}

// NewTable validates rules and returns a table holding a private copy of them.
// Bounds must be strictly ascending and the last one must be 24 so every hour
// of the day is covered.
func NewTable(rules []Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrInvalidTable)
	}

	prev := 0
	for i, r := range rules {
		if r.UpperBound <= prev || r.UpperBound > 24 {
			return nil, fmt.Errorf("%w: rule %d: bound %d must be greater than %d and at most 24", ErrInvalidTable, i, r.UpperBound, prev)
		}
		if strings.TrimSpace(r.Message) == "" {
			return nil, fmt.Errorf("%w: rule %d: message is required", ErrInvalidTable, i)
		}
		if !validation.ValidateTag(r.Tag) {
			return nil, fmt.Errorf("%w: rule %d: invalid tag %q", ErrInvalidTable, i, r.Tag)
		}
		prev = r.UpperBound
	}
	if prev != 24 {
		return nil, fmt.Errorf("%w: last bound is %d, want 24", ErrInvalidTable, prev)
	}

	return &Table{rules: append([]Rule(nil), rules...)}, nil
}

// Rules returns a copy of the table's rules in evaluation order.
func (t *Table) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

// Select returns the greeting for an hour in 0-23.
func (t *Table) Select(hour int) (Greeting, error) {
	if hour < 0 || hour > 23 {
		return Greeting{}, fmt.Errorf("%w: %d", ErrHourOutOfRange, hour)
	}
	return t.lookup(hour), nil
}

// At returns the greeting for the local hour of now.
func (t *Table) At(now time.Time) Greeting {
	return t.lookup(now.Hour())
}

func (t *Table) lookup(hour int) Greeting {
	for _, r := range t.rules {
		if hour < r.UpperBound {
			return Greeting{Message: r.Message, Tag: r.Tag}
		}
	}
	// Unreachable for a validated table.
	last := t.rules[len(t.rules)-1]
	return Greeting{Message: last.Message, Tag: last.Tag}
}
