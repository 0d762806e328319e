package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smartgreeting/internal/greeting"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	clock := func() time.Time { return time.Date(2024, 6, 15, 8, 30, 0, 0, time.Local) }
	root := NewRootCmd(clock)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))

	err := root.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"ask", "what", "time", "is", "it"}, "The precise current time is 08:30:00 AM.\n"},
		{[]string{"ask", "hello"}, "Good Morning! I am the Smart Greeting Bot. Ask me for the 'time'.\n"},
		{[]string{"ask"}, "Please type something so I can respond!\n"},
	}

	for _, tt := range tests {
		got, err := run(t, tt.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("%v: output = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestGreeting(t *testing.T) {
	got, err := run(t, "greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Good Morning! 🌅\tmorning\n" {
		t.Errorf("output = %q", got)
	}

	got, err = run(t, "greeting", "--hour", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Good Night! 🌃\tnight\n" {
		t.Errorf("--hour 0 output = %q", got)
	}
}

func TestGreeting_OutOfRange(t *testing.T) {
	_, err := run(t, "greeting", "--hour", "24")
	if !errors.Is(err, greeting.ErrHourOutOfRange) {
		t.Errorf("error = %v, want ErrHourOutOfRange", err)
	}
}

func TestRules(t *testing.T) {
	got, err := run(t, "rules")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "until 05:00\tnight") {
		t.Errorf("first rule = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "until 24:00\tevening") {
		t.Errorf("last rule = %q", lines[3])
	}
}

func TestCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greetings.yaml")
	if err := os.WriteFile(path, []byte("greetings:\n  - {until: 24, message: 'Ahoy! ⚓', tag: pirate}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd(nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"greeting", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "Ahoy! ⚓\tpirate\n" {
		t.Errorf("output = %q", out.String())
	}
}
