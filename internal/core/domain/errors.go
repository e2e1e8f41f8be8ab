package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownOperationKind is returned when an operation is neither a query, a mutation nor a subscription.
	ErrUnknownOperationKind = zerr.New("unknown operation kind")

	// ErrInvalidOperation is returned when an operation document cannot be parsed or has no usable definition.
	ErrInvalidOperation = zerr.New("invalid operation document")

	// ErrDuplicateOperation is returned when two documents in a catalog share an operation name.
	ErrDuplicateOperation = zerr.New("duplicate operation name")

	// ErrOperationNotFound is returned when a named operation is not in the catalog.
	ErrOperationNotFound = zerr.New("operation not found")

	// ErrWrongOperationKind is returned when an operation is executed through the wrong entry point.
	ErrWrongOperationKind = zerr.New("operation kind does not match entry point")

	// ErrOperationFailed is returned when the server answered with GraphQL errors.
	ErrOperationFailed = zerr.New("operation failed")

	// ErrTransport is returned when a transport cannot deliver a request or read its response.
	ErrTransport = zerr.New("transport failure")

	// ErrEmptyResponse is returned when a transport closes a single-shot response without a payload.
	ErrEmptyResponse = zerr.New("empty response")

	// ErrStreamClosed is returned to subscribers when the stream connection is gone for good.
	ErrStreamClosed = zerr.New("stream closed")

	// ErrTransportClosed is returned when a request is issued on a closed transport.
	ErrTransportClosed = zerr.New("transport closed")

	// ErrStoreClosed is returned by cache stores after Close.
	ErrStoreClosed = zerr.New("cache store closed")

	// ErrInvalidCacheKey is returned when root field arguments cannot be rendered into a cache key.
	ErrInvalidCacheKey = zerr.New("invalid cache key")

	// ErrInvalidPrefix is returned when an invalidation prefix is empty.
	ErrInvalidPrefix = zerr.New("invalid invalidation prefix")

	// ErrInvalidationFailed is returned when matching cache entries could not be removed.
	ErrInvalidationFailed = zerr.New("cache invalidation failed")

	// ErrRuleGap is returned by the rule audit when a mutation leaves dependent reads cached.
	ErrRuleGap = zerr.New("invalidation rule gap")

	// ErrInvalidConfig is returned when the client configuration cannot produce endpoints.
	ErrInvalidConfig = zerr.New("invalid client configuration")

	// ErrUnknownGender is returned when a gender display string has no enum value.
	ErrUnknownGender = zerr.New("unknown gender")
)
