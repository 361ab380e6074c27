package types

import (
	"bytes"
	"encoding/json"
)

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StreamEvent is one unit of a streamed chat response. An event carrying a
// non-empty Error is always terminal and is encoded without a content field.
type StreamEvent struct {
	Content string
	Error   string
	Done    bool
}

func ContentEvent(chunk string) StreamEvent {
	return StreamEvent{Content: chunk}
}

func DoneEvent() StreamEvent {
	return StreamEvent{Done: true}
}

func ErrorEvent(message string) StreamEvent {
	return StreamEvent{Error: message, Done: true}
}

// MarshalJSON keeps model text verbatim: <, > and & are not HTML-escaped.
func (e StreamEvent) MarshalJSON() ([]byte, error) {
	if e.Error != "" {
		return marshalVerbatim(struct {
			Error string `json:"error"`
			Done  bool   `json:"done"`
		}{e.Error, true})
	}
	return marshalVerbatim(struct {
		Content string `json:"content"`
		Done    bool   `json:"done"`
	}{e.Content, e.Done})
}

func marshalVerbatim(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (e *StreamEvent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Content string `json:"content"`
		Error   string `json:"error"`
		Done    bool   `json:"done"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Content, e.Error, e.Done = raw.Content, raw.Error, raw.Done
	return nil
}
