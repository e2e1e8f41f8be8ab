// Package domain contains the core models of the stash GraphQL client: operations,
// results, cache entries, invalidation rules and the filter and value helpers used
// by callers to build requests.
package domain

import (
	"encoding/json"
	"errors"

	"go.trai.ch/zerr"
)

// OperationKind classifies a GraphQL operation by its definition keyword.
type OperationKind uint8

const (
	// OperationUnknown is the zero kind. Operations of this kind cannot be routed.
	OperationUnknown OperationKind = iota
	// OperationQuery is a read.
	OperationQuery
	// OperationMutation is a write.
	OperationMutation
	// OperationSubscription is a server push stream.
	OperationSubscription
)

// String returns the GraphQL keyword of the kind.
func (k OperationKind) String() string {
	switch k {
	case OperationQuery:
		return "query"
	case OperationMutation:
		return "mutation"
	case OperationSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// Argument is a root field argument. Resolve evaluates the argument against the
// variables of a request, so literals and variable references share one path.
type Argument struct {
	Name    string
	Resolve func(vars map[string]any) (any, error)
}

// RootField is a top-level field of an operation's selection set.
type RootField struct {
	// Name is the schema field name, used for cache keys.
	Name string
	// ResponseKey is the alias or, without one, the field name. Result data is keyed by it.
	ResponseKey string
	Arguments   []Argument
}

// CacheKey renders the key a root field is cached under: the bare field name when it
// takes no arguments, and name(<arguments as canonical JSON>) otherwise. Arguments that
// resolve to null are left out, so an omitted variable and an explicit null share a key.
func (f RootField) CacheKey(vars map[string]any) (string, error) {
	if len(f.Arguments) == 0 {
		return f.Name, nil
	}
	args := make(map[string]any, len(f.Arguments))
	for _, arg := range f.Arguments {
		v, err := arg.Resolve(vars)
		if err != nil {
			return "", zerr.With(errors.Join(ErrInvalidCacheKey, err), "argument", arg.Name)
		}
		if v == nil {
			continue
		}
		args[arg.Name] = v
	}
	// encoding/json sorts map keys, which makes the rendering canonical.
	raw, err := json.Marshal(args)
	if err != nil {
		return "", zerr.With(errors.Join(ErrInvalidCacheKey, err), "field", f.Name)
	}
	return f.Name + "(" + string(raw) + ")", nil
}

// Operation is a parsed, named GraphQL operation document.
type Operation struct {
	Name     string
	Kind     OperationKind
	Document string
	// RootFields is nil when the root selection uses fragments or directives. Such
	// operations bypass the cache.
	RootFields []RootField
}

// Cacheable reports whether results of the operation can be stored per root field.
func (o *Operation) Cacheable() bool {
	return o.Kind == OperationQuery && len(o.RootFields) > 0
}

// FetchPolicy controls how a query interacts with the cache.
type FetchPolicy uint8

const (
	// CacheFirst answers from the cache when every root field is present and
	// otherwise fetches and stores the result.
	CacheFirst FetchPolicy = iota
	// NetworkOnly always fetches and stores the result.
	NetworkOnly
	// NoCache always fetches and never touches the cache.
	NoCache
)

// String returns the policy name as used on the command line.
func (p FetchPolicy) String() string {
	switch p {
	case NetworkOnly:
		return "network-only"
	case NoCache:
		return "no-cache"
	default:
		return "cache-first"
	}
}

// ParseFetchPolicy parses a command line policy name.
func ParseFetchPolicy(s string) (FetchPolicy, error) {
	switch s {
	case "", "cache-first":
		return CacheFirst, nil
	case "network-only":
		return NetworkOnly, nil
	case "no-cache":
		return NoCache, nil
	}
	return CacheFirst, zerr.With(zerr.New("unknown fetch policy"), "policy", s)
}

// ErrorPolicy controls whether GraphQL errors fail an operation.
type ErrorPolicy uint8

const (
	// ErrorPolicyNone fails the operation on any GraphQL error.
	ErrorPolicyNone ErrorPolicy = iota
	// ErrorPolicyIgnore returns whatever data arrived and drops the errors.
	ErrorPolicyIgnore
)

// Request is one execution of an operation.
type Request struct {
	Operation   *Operation
	Variables   map[string]any
	FetchPolicy FetchPolicy
	ErrorPolicy ErrorPolicy
}

// GraphQLError is a single entry of a response's errors array.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Result is a response payload. Data is keyed by root field response key.
type Result struct {
	Data      map[string]json.RawMessage `json:"data"`
	Errors    []GraphQLError             `json:"errors,omitempty"`
	FromCache bool                       `json:"-"`
}

// HasErrors reports whether the server returned GraphQL errors.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Err folds the GraphQL errors into a single error wrapping ErrOperationFailed.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	err := zerr.With(ErrOperationFailed, "message", r.Errors[0].Message)
	if len(r.Errors) > 1 {
		err = zerr.With(err, "error_count", len(r.Errors))
	}
	return err
}

// Decode unmarshals one root field of the result into out.
func (r *Result) Decode(responseKey string, out any) error {
	raw, ok := r.Data[responseKey]
	if !ok {
		return zerr.With(zerr.New("field missing from result"), "field", responseKey)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode result field"), "field", responseKey)
	}
	return nil
}

// DecodeAll unmarshals the whole data object into out.
func (r *Result) DecodeAll(out any) error {
	raw, err := json.Marshal(r.Data)
	if err != nil {
		return zerr.Wrap(err, "failed to encode result data")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return zerr.Wrap(err, "failed to decode result data")
	}
	return nil
}
