package server

import (
	"encoding/json"
	"fmt"
)

// Message types.
const (
	MsgHello    = "hello"
	MsgFragment = "fragment"
	MsgClick    = "click"
	MsgPing     = "ping"
	MsgRender   = "render"
	MsgError    = "error"
	MsgPong     = "pong"
)

// Message is one JSON frame in either direction. Only the fields of its
// type are set.
type Message struct {
	T        string `json:"t"`
	Fragment string `json:"fragment,omitempty"`
	Replace  bool   `json:"replace,omitempty"`
	HID      string `json:"hid,omitempty"`
	HTML     string `json:"html,omitempty"`
	Location string `json:"location,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

// DecodeMessage parses a client frame.
func DecodeMessage(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	switch m.T {
	case MsgHello, MsgFragment, MsgClick, MsgPing:
		return m, nil
	}
	return m, fmt.Errorf("%w: %q", ErrUnknownMessage, m.T)
}
