// SPDX-License-Identifier: MPL-2.0

package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedMessage is returned when a frame is not a JSON array whose
// first element is the event name.
var ErrMalformedMessage = errors.New("malformed event message")

type (
	// Message is one event on the wire, encoded as [name, ...args].
	Message struct {
		Name string
		Args []any
	}

	// envelope wraps messages sent from the UI side, where the host expects
	// the payload under "pluginMessage".
	envelope struct {
		PluginMessage *Message `json:"pluginMessage,omitempty"`
	}
)

// MarshalJSON encodes m as [name, ...args]. HTML characters are left
// unescaped.
func (m Message) MarshalJSON() ([]byte, error) {
	frame := make([]any, 0, len(m.Args)+1)
	frame = append(frame, m.Name)
	frame = append(frame, m.Args...)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(frame); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes a [name, ...args] frame.
func (m *Message) UnmarshalJSON(data []byte) error {
	var frame []json.RawMessage
	if err := json.Unmarshal(data, &frame); err != nil || len(frame) == 0 {
		return ErrMalformedMessage
	}

	var name string
	if err := json.Unmarshal(frame[0], &name); err != nil {
		return fmt.Errorf("%w: event name must be a string", ErrMalformedMessage)
	}

	args := make([]any, 0, len(frame)-1)
	for i, raw := range frame[1:] {
		var arg any
		if err := json.Unmarshal(raw, &arg); err != nil {
			return fmt.Errorf("%w: argument %d: %w", ErrMalformedMessage, i, err)
		}
		args = append(args, arg)
	}

	*m = Message{Name: name, Args: args}
	return nil
}
