// Package wstransport carries subscriptions over a persistent graphql-ws connection.
package wstransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	writeWait      = 10 * time.Second
	pongGrace      = 10 * time.Second
	maxMessageSize = 16 << 20
	streamBuffer   = 32
)

// Options tune the connection lifecycle.
type Options struct {
	HandshakeTimeout time.Duration
	PingInterval     time.Duration
	Reconnect        bool
	ReconnectDelay   time.Duration
	// MaxReconnects bounds consecutive failed attempts. Zero means unlimited.
	MaxReconnects int
	Header        http.Header
	// OnReconnect runs after a dropped connection has been re-established.
	OnReconnect func()
}

// OptionsFromConfig maps the transport section of the client configuration.
func OptionsFromConfig(cfg domain.TransportConfig) Options {
	return Options{
		HandshakeTimeout: cfg.HandshakeTimeout,
		PingInterval:     cfg.PingInterval,
		Reconnect:        cfg.Reconnect,
		ReconnectDelay:   cfg.ReconnectDelay,
		MaxReconnects:    cfg.MaxReconnects,
	}
}

// Transport implements ports.Transport on one shared websocket. The connection is
// dialed lazily by the first Request and every stream is multiplexed over it.
type Transport struct {
	endpoint string
	opts     Options
	dialer   *websocket.Dialer

	// dialSem serializes lazy dials; acquiring it honours the caller's context.
	dialSem chan struct{}

	mu      sync.Mutex
	conn    *connection
	streams map[string]*stream
	closed  bool
	stop    chan struct{}
	// reconnected is non-nil while a reconnect loop runs and is closed when it ends.
	reconnected chan struct{}

	nextID atomic.Uint64
}

// New creates a Transport for the given ws:// or wss:// endpoint.
func New(endpoint string, opts Options) *Transport {
	return &Transport{
		endpoint: endpoint,
		opts:     opts,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: opts.HandshakeTimeout,
			Subprotocols:     []string{Subprotocol},
		},
		dialSem: make(chan struct{}, 1),
		streams: make(map[string]*stream),
		stop:    make(chan struct{}),
	}
}

// Endpoint returns the websocket URL.
func (t *Transport) Endpoint() string {
	return t.endpoint
}

// Request starts the operation on the shared connection and returns a stream of
// its payloads. Cancelling ctx stops the stream.
func (t *Transport) Request(ctx context.Context, req domain.Request) (ports.Response, error) {
	if req.Operation == nil {
		return nil, zerr.With(domain.ErrInvalidOperation, "reason", "nil operation")
	}
	conn, err := t.connect(ctx)
	if err != nil {
		return nil, zerr.With(err, "operation", req.Operation.Name)
	}

	payload, err := json.Marshal(startPayload{
		Query:         req.Operation.Document,
		Variables:     req.Variables,
		OperationName: req.Operation.Name,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to encode request"), "operation", req.Operation.Name)
	}

	s := newStream(t, strconv.FormatUint(t.nextID.Add(1), 10), req.Operation.Name, payload)

	t.mu.Lock()
	t.streams[s.id] = s
	t.mu.Unlock()

	if err := conn.writeJSON(s.startMessage()); err != nil {
		t.unregister(s.id)
		return nil, zerr.With(errors.Join(domain.ErrTransport, err), "operation", req.Operation.Name)
	}

	s.watch(ctx)
	return s, nil
}

// Close stops every stream, terminates the connection and rejects further requests.
func (t *Transport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	close(t.stop)
	conn := t.conn
	t.conn = nil
	streams := t.drainStreams()
	t.mu.Unlock()

	for _, s := range streams {
		s.end(domain.ErrTransportClosed)
	}
	if conn != nil {
		_ = conn.writeJSON(message{Type: msgConnectionTerminate})
		conn.close()
	}
	return nil
}

// connect returns the live connection, dialing it when there is none. While a
// reconnect is in progress it waits for the outcome, or until ctx ends.
func (t *Transport) connect(ctx context.Context) (*connection, error) {
	for {
		conn, pending, err := t.current()
		if err != nil || conn != nil {
			return conn, err
		}
		if pending != nil {
			select {
			case <-pending:
				continue
			case <-ctx.Done():
				return nil, zerr.With(errors.Join(domain.ErrTransport, ctx.Err()), "reason", "reconnecting")
			}
		}

		select {
		case t.dialSem <- struct{}{}:
		case <-ctx.Done():
			return nil, errors.Join(domain.ErrTransport, ctx.Err())
		}
		conn, pending, err = t.current()
		if err != nil || conn != nil || pending != nil {
			<-t.dialSem
			if err != nil || conn != nil {
				return conn, err
			}
			continue
		}

		conn, err = t.dial(ctx)
		if err == nil {
			t.attach(conn)
		}
		<-t.dialSem
		return conn, err
	}
}

// current reports the live connection or the pending reconnect, if any.
func (t *Transport) current() (*connection, <-chan struct{}, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, nil, domain.ErrTransportClosed
	}
	if t.conn != nil {
		return t.conn, nil, nil
	}
	if t.reconnected != nil {
		return nil, t.reconnected, nil
	}
	return nil, nil, nil
}

func (t *Transport) attach(conn *connection) {
	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()

	go t.readLoop(conn)
	if t.opts.PingInterval > 0 {
		go conn.pingLoop(t.opts.PingInterval)
	}
}

// dial opens the socket and completes the connection_init handshake.
func (t *Transport) dial(ctx context.Context) (*connection, error) {
	ws, resp, err := t.dialer.DialContext(ctx, t.endpoint, t.opts.Header)
	if err != nil {
		err = zerr.With(errors.Join(domain.ErrTransport, err), "endpoint", t.endpoint)
		if resp != nil {
			err = zerr.With(err, "status", resp.StatusCode)
		}
		return nil, err
	}
	conn := newConnection(ws)

	if err := conn.writeJSON(message{Type: msgConnectionInit, Payload: json.RawMessage(`{}`)}); err != nil {
		conn.close()
		return nil, errors.Join(domain.ErrTransport, err)
	}

	if t.opts.HandshakeTimeout > 0 {
		_ = ws.SetReadDeadline(time.Now().Add(t.opts.HandshakeTimeout))
	}
	for {
		var msg message
		if err := ws.ReadJSON(&msg); err != nil {
			conn.close()
			return nil, zerr.With(errors.Join(domain.ErrTransport, err), "endpoint", t.endpoint)
		}
		switch msg.Type {
		case msgConnectionAck:
			_ = ws.SetReadDeadline(time.Time{})
			return conn, nil
		case msgKeepAlive:
			continue
		case msgConnectionError:
			conn.close()
			return nil, zerr.With(zerr.With(domain.ErrTransport, "endpoint", t.endpoint), "payload", string(msg.Payload))
		default:
			conn.close()
			return nil, zerr.With(zerr.With(domain.ErrTransport, "endpoint", t.endpoint), "unexpected", msg.Type)
		}
	}
}

func (t *Transport) readLoop(conn *connection) {
	ws := conn.ws
	ws.SetReadLimit(maxMessageSize)
	if t.opts.PingInterval > 0 {
		wait := t.opts.PingInterval + pongGrace
		_ = ws.SetReadDeadline(time.Now().Add(wait))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(wait))
		})
	}

	for {
		var msg message
		if err := ws.ReadJSON(&msg); err != nil {
			conn.close()
			t.disconnected(conn, err)
			return
		}
		if t.opts.PingInterval > 0 {
			_ = ws.SetReadDeadline(time.Now().Add(t.opts.PingInterval + pongGrace))
		}
		t.dispatch(conn, msg)
	}
}

func (t *Transport) dispatch(conn *connection, msg message) {
	switch msg.Type {
	case msgKeepAlive, msgConnectionAck:
		return
	case msgConnectionError:
		// Server rejected the connection after the handshake; treat it as a drop.
		conn.close()
		return
	}

	t.mu.Lock()
	s := t.streams[msg.ID]
	t.mu.Unlock()
	if s == nil {
		return
	}

	switch msg.Type {
	case msgData:
		var result domain.Result
		if err := json.Unmarshal(msg.Payload, &result); err != nil {
			t.unregister(s.id)
			s.end(errors.Join(domain.ErrTransport, err))
			return
		}
		s.deliver(result)
	case msgError:
		t.unregister(s.id)
		s.end(operationError(s.operation, msg.Payload))
	case msgComplete:
		t.unregister(s.id)
		s.end(nil)
	}
}

// operationError decodes the payload of an error frame, which is either a list of
// GraphQL errors or a single one.
func operationError(operation string, payload json.RawMessage) error {
	var list []domain.GraphQLError
	if err := json.Unmarshal(payload, &list); err != nil || len(list) == 0 {
		var single domain.GraphQLError
		if err := json.Unmarshal(payload, &single); err == nil && single.Message != "" {
			list = []domain.GraphQLError{single}
		}
	}
	err := zerr.With(domain.ErrOperationFailed, "operation", operation)
	if len(list) > 0 {
		err = zerr.With(err, "message", list[0].Message)
	}
	return err
}

// disconnected handles a dropped connection: reconnect and restart active streams,
// or fail them all.
func (t *Transport) disconnected(conn *connection, cause error) {
	t.mu.Lock()
	if t.closed || t.conn != conn {
		t.mu.Unlock()
		return
	}
	t.conn = nil
	if !t.opts.Reconnect {
		t.mu.Unlock()
		t.failAll(errors.Join(domain.ErrTransport, cause))
		return
	}
	done := make(chan struct{})
	t.reconnected = done
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.reconnected = nil
		t.mu.Unlock()
		close(done)
	}()

	for attempt := 1; t.opts.MaxReconnects == 0 || attempt <= t.opts.MaxReconnects; attempt++ {
		select {
		case <-t.stop:
			return
		case <-time.After(t.opts.ReconnectDelay):
		}

		next, err := t.dial(context.Background())
		if err != nil {
			cause = err
			continue
		}

		t.mu.Lock()
		if t.closed {
			t.mu.Unlock()
			next.close()
			return
		}
		streams := make([]*stream, 0, len(t.streams))
		for _, s := range t.streams {
			streams = append(streams, s)
		}
		t.mu.Unlock()

		t.attach(next)
		for _, s := range streams {
			// Events emitted while disconnected are not replayed.
			_ = next.writeJSON(s.startMessage())
		}
		if t.opts.OnReconnect != nil {
			t.opts.OnReconnect()
		}
		return
	}

	t.failAll(zerr.With(errors.Join(domain.ErrTransport, cause), "attempts", t.opts.MaxReconnects))
}

func (t *Transport) failAll(err error) {
	t.mu.Lock()
	streams := t.drainStreams()
	t.mu.Unlock()
	for _, s := range streams {
		s.end(err)
	}
}

// drainStreams empties the registry. Callers hold t.mu.
func (t *Transport) drainStreams() []*stream {
	streams := make([]*stream, 0, len(t.streams))
	for id, s := range t.streams {
		streams = append(streams, s)
		delete(t.streams, id)
	}
	return streams
}

func (t *Transport) unregister(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.streams[id]
	delete(t.streams, id)
	return ok
}

// stopStream unregisters the stream and tells the server to stop it.
func (t *Transport) stopStream(id string) {
	if !t.unregister(id) {
		return
	}
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn != nil {
		_ = conn.writeJSON(message{ID: id, Type: msgStop})
	}
}

// connection wraps one websocket with serialized writes.
type connection struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
	once    sync.Once
	done    chan struct{}
}

func newConnection(ws *websocket.Conn) *connection {
	return &connection{ws: ws, done: make(chan struct{})}
}

func (c *connection) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

func (c *connection) pingLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (c *connection) close() {
	c.once.Do(func() {
		close(c.done)
		c.writeMu.Lock()
		_ = c.ws.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait),
		)
		c.writeMu.Unlock()
		_ = c.ws.Close()
	})
}
