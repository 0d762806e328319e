// Package testutil provides test utilities and helpers.
package testutil

import (
	"testing"
	"time"

	"smartgreeting/internal/greeting"
	"smartgreeting/internal/responder"
)

// FixedClock returns a clock frozen at the given local time of day.
func FixedClock(hour, min, sec int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 6, 15, hour, min, sec, 0, time.Local)
	}
}

// TestResponder creates a responder over the default greeting table with the
// clock frozen at hour:min:sec.
func TestResponder(t *testing.T, hour, min, sec int) *responder.Responder {
	t.Helper()
	return responder.New(greeting.DefaultTable(), FixedClock(hour, min, sec))
}

// TestTable builds a validated greeting table and fails the test on error.
func TestTable(t *testing.T, rules ...greeting.Rule) *greeting.Table {
	t.Helper()

	table, err := greeting.NewTable(rules)
	if err != nil {
		t.Fatalf("failed to create test greeting table: %v", err)
	}
	return table
}
