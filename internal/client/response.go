package client

import (
	"bytes"
	"encoding/json"

	"github.com/markis/lai/internal/apperr"
)

// ChatResponse represents the part of the chat API response lai reads.
// Choices are kept raw so that only the first one has to match Choice.
type ChatResponse struct {
	Choices []json.RawMessage `json:"choices"`
}

// Choice is the tolerant shape of choices[0]. Every level is optional.
type Choice struct {
	Message *struct {
		Content *string `json:"content"`
	} `json:"message"`
}

// Content returns choices[0].message.content when it is a string.
func (r ChatResponse) Content() (string, bool) {
	if len(r.Choices) == 0 {
		return "", false
	}
	var choice Choice
	if err := json.Unmarshal(r.Choices[0], &choice); err != nil {
		return "", false
	}
	if choice.Message == nil || choice.Message.Content == nil {
		return "", false
	}
	return *choice.Message.Content, true
}

// decodeResponse separates invalid JSON from valid JSON of the wrong shape.
func decodeResponse(body []byte) (string, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", apperr.New(apperr.KindParse, "failed to decode response", err)
	}

	var resp ChatResponse
	if err := json.Unmarshal(raw, &resp); err == nil {
		if content, ok := resp.Content(); ok {
			return content, nil
		}
	}

	return "", apperr.NewVerbatim(apperr.KindSchema, "Unexpected response format: "+canonical(raw))
}

// canonical re-encodes raw compactly with object keys sorted. Numbers keep
// their original text and HTML characters are not escaped.
func canonical(raw json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return string(raw)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
