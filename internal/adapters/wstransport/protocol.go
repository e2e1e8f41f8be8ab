package wstransport

import "encoding/json"

// Subprotocol is the websocket subprotocol negotiated with the server.
const Subprotocol = "graphql-ws"

// Message types of the graphql-ws protocol.
const (
	msgConnectionInit      = "connection_init"
	msgConnectionTerminate = "connection_terminate"
	msgStart               = "start"
	msgStop                = "stop"

	msgConnectionAck   = "connection_ack"
	msgConnectionError = "connection_error"
	msgKeepAlive       = "ka"
	msgData            = "data"
	msgError           = "error"
	msgComplete        = "complete"
)

// message is a single graphql-ws frame.
type message struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type startPayload struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}
