package app

import (
	"sync"

	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/zerr"
)

// Subscription is a caller-owned stream of results. The client does not track it.
type Subscription struct {
	name   string
	resp   ports.Response
	vertex ports.Vertex
	once   sync.Once
}

func newSubscription(name string, resp ports.Response, vertex ports.Vertex) *Subscription {
	return &Subscription{name: name, resp: resp, vertex: vertex}
}

// Name returns the subscribed operation name.
func (s *Subscription) Name() string {
	return s.name
}

// Next blocks until the next event arrives. It returns false when the stream ends;
// check Err afterwards.
func (s *Subscription) Next() bool {
	return s.resp.Next()
}

// Result returns the current event.
func (s *Subscription) Result() domain.Result {
	return s.resp.Get()
}

// Decode unmarshals the subscription field of the current event into out. Events
// carrying GraphQL errors fail with domain.ErrOperationFailed.
func (s *Subscription) Decode(field string, out any) error {
	res := s.resp.Get()
	if err := res.Err(); err != nil {
		return zerr.With(err, "operation", s.name)
	}
	return res.Decode(field, out)
}

// Err returns the error that ended the stream, if any.
func (s *Subscription) Err() error {
	return s.resp.Err()
}

// Close stops the stream. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.resp.Close()
		s.vertex.Complete(s.resp.Err())
	})
}
