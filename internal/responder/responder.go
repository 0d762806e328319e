// Package responder answers chat queries with canned replies chosen by
// first-match keyword dispatch.
package responder

import (
	"fmt"
	"strings"
	"time"

	"smartgreeting/internal/greeting"
	"smartgreeting/internal/validation"
)

// Intent names the rule that produced a reply.
type Intent string

const (
	IntentEmpty    Intent = "empty"
	IntentTime     Intent = "time"
	IntentGreeting Intent = "greeting"
	IntentHello    Intent = "hello"
	IntentIdentity Intent = "identity"
	IntentFallback Intent = "fallback"

	// IntentInvalid marks a payload that never reached dispatch.
	IntentInvalid Intent = "invalid"
)

// Intents lists every intent, dispatch order first.
var Intents = []Intent{IntentEmpty, IntentTime, IntentGreeting, IntentHello, IntentIdentity, IntentFallback, IntentInvalid}

const (
	emptyReply    = "Please type something so I can respond!"
	identityReply = "I am a professional Smart Greeting Bot. I tell you the time and the appropriate greeting (Morning, Afternoon, Evening, or Night)."
	fallbackReply = "I'm sorry, I only process time, greetings, and identity queries. Try one of those!"

	// TimeLayout renders wall-clock time as HH:MM:SS AM/PM.
	TimeLayout = "03:04:05 PM"
)

// Reply is the responder's answer to a single query.
type Reply struct {
	Intent Intent
	Text   string
}

type rule struct {
	intent Intent
	match  func(text string) bool
	reply  func(now time.Time, g greeting.Greeting) string
}

// rules is evaluated top to bottom and the first match wins. Keywords overlap
// ("hi, greet me"), so the order is part of the behavior.
var rules = []rule{
	{
		intent: IntentEmpty,
		match:  func(text string) bool { return text == "" },
		reply:  func(time.Time, greeting.Greeting) string { return emptyReply },
	},
	{
		intent: IntentTime,
		match:  containsAny("time", "hour"),
		reply: func(now time.Time, _ greeting.Greeting) string {
			return fmt.Sprintf("The precise current time is %s.", now.Format(TimeLayout))
		},
	},
	{
		intent: IntentGreeting,
		match:  containsAny("greeting", "greet"),
		reply: func(_ time.Time, g greeting.Greeting) string {
			return fmt.Sprintf("I am currently set to say: %s. Ask me who I am!", g.Message)
		},
	},
	{
		intent: IntentHello,
		match:  containsAny("hello", "hi", "hey"),
		reply: func(_ time.Time, g greeting.Greeting) string {
			return fmt.Sprintf("%s! I am the Smart Greeting Bot. Ask me for the 'time'.", g.Lead())
		},
	},
	{
		intent: IntentIdentity,
		match:  containsAny("who are you", "what can you do"),
		reply:  func(time.Time, greeting.Greeting) string { return identityReply },
	},
	{
		intent: IntentFallback,
		match:  func(string) bool { return true },
		reply:  func(time.Time, greeting.Greeting) string { return fallbackReply },
	},
}

func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

// Responder dispatches queries against a greeting table and a clock.
// It holds no mutable state and is safe for concurrent use.
type Responder struct {
	table *greeting.Table
	now   func() time.Time
}

// New creates a responder. A nil clock defaults to time.Now.
func New(table *greeting.Table, now func() time.Time) *Responder {
	if now == nil {
		now = time.Now
	}
	return &Responder{table: table, now: now}
}

// Respond normalizes text and returns the reply of the first matching rule.
func (r *Responder) Respond(text string) Reply {
	normalized := validation.NormalizeQuery(text)
	now := r.now()
	current := r.table.At(now)

	for _, rl := range rules {
		if rl.match(normalized) {
			return Reply{Intent: rl.intent, Text: rl.reply(now, current)}
		}
	}
	// The fallback rule always matches.
	return Reply{Intent: IntentFallback, Text: fallbackReply}
}

// Now reads the responder's clock.
func (r *Responder) Now() time.Time {
	return r.now()
}

// Greeting returns the greeting for the responder's current clock reading.
func (r *Responder) Greeting() greeting.Greeting {
	return r.table.At(r.now())
}

// Table returns the greeting table the responder consults.
func (r *Responder) Table() *greeting.Table {
	return r.table
}
