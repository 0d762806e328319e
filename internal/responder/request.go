package responder

import (
	"encoding/json"
	"errors"
)

// ErrInvalidRequest is returned when a chat payload is not a JSON object.
var ErrInvalidRequest = errors.New("invalid request format")

// ChatRequest is the body of POST /api/get.
type ChatRequest struct {
	Msg json.RawMessage `json:"msg"`
}

// ChatResponse is the body returned by POST /api/get.
type ChatResponse struct {
	Response string `json:"response"`
}

// ParseRequest extracts the message text from a chat payload. The payload
// must be a JSON object; a missing or non-string "msg" yields "".
func ParseRequest(body []byte) (string, error) {
	var req *ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", ErrInvalidRequest
	}
	if req == nil {
		return "", ErrInvalidRequest
	}

	var text string
	if len(req.Msg) > 0 {
		if err := json.Unmarshal(req.Msg, &text); err != nil {
			return "", nil
		}
	}
	return text, nil
}
