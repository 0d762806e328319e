package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"smartgreeting/internal/responder"
	"smartgreeting/internal/testutil"
)

func newTestApp(t *testing.T, hour int) *fiber.App {
	h := NewChatHandler(testutil.TestResponder(t, hour, 15, 30))

	app := fiber.New()
	app.Post("/api/get", h.Get)
	app.Get("/api/greeting", h.Greeting)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, responder.ChatResponse) {
	t.Helper()

	req, _ := http.NewRequest(http.MethodPost, "/api/get", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var out responder.ChatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("response is not JSON: %s", raw)
	}
	return resp.StatusCode, out
}

func TestChatHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantPrefix string
	}{
		{"hello at nine", `{"msg": "hello"}`, 200, "Good Morning! I am the Smart Greeting Bot."},
		{"time", `{"msg": "What time is it?"}`, 200, "The precise current time is 09:15:30 AM."},
		{"empty msg", `{"msg": ""}`, 200, "Please type something so I can respond!"},
		{"missing msg", `{}`, 200, "Please type something so I can respond!"},
		{"non-string msg", `{"msg": 7}`, 200, "Please type something so I can respond!"},
		{"identity", `{"msg": "who are you"}`, 200, "I am a professional Smart Greeting Bot."},
		{"fallback", `{"msg": "xyz123"}`, 200, "I'm sorry, I only process time, greetings, and identity queries."},
		{"malformed json", `{"msg": `, 400, InvalidRequestMessage},
		{"array body", `["hello"]`, 400, InvalidRequestMessage},
		{"null body", `null`, 400, InvalidRequestMessage},
		{"empty body", ``, 400, InvalidRequestMessage},
	}

	app := newTestApp(t, 9)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := postChat(t, app, tt.body)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if !strings.HasPrefix(out.Response, tt.wantPrefix) {
				t.Errorf("response = %q, want prefix %q", out.Response, tt.wantPrefix)
			}
		})
	}
}

func TestChatHandler_Greeting(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTag    string
		wantHour   int
	}{
		{"current", "", 200, "evening", 19},
		{"explicit morning", "?hour=5", 200, "morning", 5},
		{"explicit midnight", "?hour=0", 200, "night", 0},
		{"explicit afternoon", "?hour=12", 200, "afternoon", 12},
		{"too large", "?hour=24", 400, "", 0},
		{"negative", "?hour=-1", 400, "", 0},
		{"not a number", "?hour=noon", 400, "", 0},
	}

	app := newTestApp(t, 19)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/api/greeting"+tt.query, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus != 200 {
				return
			}

			var out GreetingResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.Tag != tt.wantTag || out.Hour != tt.wantHour {
				t.Errorf("got %+v, want tag %q hour %d", out, tt.wantTag, tt.wantHour)
			}
		})
	}
}
