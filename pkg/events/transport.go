// SPDX-License-Identifier: MPL-2.0

package events

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// pipeBuffer is the number of in-flight messages per direction of a Pipe.
const pipeBuffer = 16

// ErrClosed is returned by transports after Close.
var ErrClosed = errors.New("transport closed")

type (
	// Transport carries messages between the two contexts.
	Transport interface {
		Send(ctx context.Context, msg Message) error
		Receive(ctx context.Context) (Message, error)
		Close() error
	}

	// PipeTransport is one end of an in-memory Pipe.
	PipeTransport struct {
		shared *pipeState
		in     <-chan []byte
		out    chan<- []byte
	}

	pipeState struct {
		done      chan struct{}
		closeOnce sync.Once
	}

	// StreamTransport exchanges newline-delimited JSON frames over a
	// reader and a writer, such as a child process's stdio.
	StreamTransport struct {
		mu        sync.Mutex
		enc       *json.Encoder
		dec       *json.Decoder
		closer    io.Closer
		enveloped bool
	}

	// StreamOption configures a StreamTransport.
	StreamOption func(*StreamTransport)
)

// Pipe returns two connected in-memory transports. Messages are JSON
// encoded in transit, so receivers see the same value shapes a real
// postMessage boundary would produce. Closing either end closes both.
func Pipe() (mainSide, uiSide *PipeTransport) {
	shared := &pipeState{done: make(chan struct{})}
	toUI := make(chan []byte, pipeBuffer)
	toMain := make(chan []byte, pipeBuffer)
	return &PipeTransport{shared: shared, in: toMain, out: toUI},
		&PipeTransport{shared: shared, in: toUI, out: toMain}
}

// Send implements Transport.
func (p *PipeTransport) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding event %q: %w", msg.Name, err)
	}
	select {
	case <-p.shared.done:
		return ErrClosed
	default:
	}
	select {
	case p.out <- data:
		return nil
	case <-p.shared.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive implements Transport.
func (p *PipeTransport) Receive(ctx context.Context) (Message, error) {
	select {
	case data := <-p.in:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			return Message{}, err
		}
		return msg, nil
	case <-p.shared.done:
		return Message{}, ErrClosed
	case <-ctx.Done():
		return Message{}, ctx.Err()
	}
}

// Close implements Transport.
func (p *PipeTransport) Close() error {
	p.shared.closeOnce.Do(func() { close(p.shared.done) })
	return nil
}

// WithEnvelope wraps outgoing frames as {"pluginMessage": [...]} and skips
// incoming frames that carry no pluginMessage. This is the UI-side framing.
func WithEnvelope() StreamOption {
	return func(s *StreamTransport) {
		s.enveloped = true
	}
}

// NewStreamTransport creates a transport reading frames from r and writing
// them to w. If r or w implements io.Closer, Close closes it.
func NewStreamTransport(r io.Reader, w io.Writer, opts ...StreamOption) *StreamTransport {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	s := &StreamTransport{
		enc: enc,
		dec: json.NewDecoder(bufio.NewReader(r)),
	}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	} else if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements Transport. ctx is checked before writing only; a write
// in progress is not interrupted.
func (s *StreamTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var frame any = msg
	if s.enveloped {
		frame = envelope{PluginMessage: &msg}
	}
	if err := s.enc.Encode(frame); err != nil {
		return fmt.Errorf("writing event %q: %w", msg.Name, err)
	}
	return nil
}

// Receive implements Transport. It returns io.EOF when the stream ends.
// The read itself does not observe ctx; close the underlying reader to
// unblock it.
func (s *StreamTransport) Receive(ctx context.Context) (Message, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Message{}, err
		}
		if !s.enveloped {
			var msg Message
			err := s.dec.Decode(&msg)
			return msg, err
		}

		var env envelope
		if err := s.dec.Decode(&env); err != nil {
			return Message{}, err
		}
		if env.PluginMessage != nil {
			return *env.PluginMessage, nil
		}
	}
}

// Close implements Transport.
func (s *StreamTransport) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
