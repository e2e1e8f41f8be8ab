package wstransport

import (
	"context"
	"encoding/json"
	"sync"

	"go.trai.ch/stashql/internal/core/domain"
)

// stream is the ports.Response of one started operation.
type stream struct {
	t         *Transport
	id        string
	operation string
	payload   json.RawMessage

	results   chan domain.Result
	ended     chan struct{}
	endOnce   sync.Once
	stopWatch func() bool

	mu      sync.Mutex
	err     error
	current domain.Result
}

func newStream(t *Transport, id, operation string, payload json.RawMessage) *stream {
	return &stream{
		t:         t,
		id:        id,
		operation: operation,
		payload:   payload,
		results:   make(chan domain.Result, streamBuffer),
		ended:     make(chan struct{}),
	}
}

func (s *stream) startMessage() message {
	return message{ID: s.id, Type: msgStart, Payload: s.payload}
}

// deliver blocks while the buffer is full, so a slow consumer applies backpressure
// to the read loop.
func (s *stream) deliver(r domain.Result) {
	select {
	case s.results <- r:
	case <-s.ended:
	}
}

// watch closes the stream when ctx is done.
func (s *stream) watch(ctx context.Context) {
	stop := context.AfterFunc(ctx, s.Close)
	s.mu.Lock()
	s.stopWatch = stop
	s.mu.Unlock()

	select {
	case <-s.ended:
		stop()
	default:
	}
}

func (s *stream) end(err error) {
	s.endOnce.Do(func() {
		s.mu.Lock()
		s.err = err
		stop := s.stopWatch
		s.mu.Unlock()
		close(s.ended)
		if stop != nil {
			stop()
		}
	})
}

// Next blocks until a payload arrives or the stream ends. Buffered payloads are
// still yielded after the end.
func (s *stream) Next() bool {
	select {
	case r := <-s.results:
		s.setCurrent(r)
		return true
	case <-s.ended:
		select {
		case r := <-s.results:
			s.setCurrent(r)
			return true
		default:
			return false
		}
	}
}

func (s *stream) setCurrent(r domain.Result) {
	s.mu.Lock()
	s.current = r
	s.mu.Unlock()
}

func (s *stream) Get() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close stops the operation on the server. It is safe to call more than once.
func (s *stream) Close() {
	s.t.stopStream(s.id)
	s.end(nil)
}
