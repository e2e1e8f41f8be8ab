// Package rootfields parses GraphQL operation documents into domain operations: the
// operation kind used for routing and the root fields used for cache keys.
package rootfields

import (
	"errors"

	"github.com/dgraph-io/gqlparser/v2/ast"
	"github.com/dgraph-io/gqlparser/v2/parser"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse parses a document holding exactly one named operation.
func Parse(document string) (*domain.Operation, error) {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Input: document})
	if gqlErr != nil {
		return nil, zerr.With(errors.Join(domain.ErrInvalidOperation, gqlErr), "reason", gqlErr.Message)
	}
	if len(doc.Operations) != 1 {
		return nil, zerr.With(domain.ErrInvalidOperation, "operation_count", len(doc.Operations))
	}
	def := doc.Operations[0]
	if def.Name == "" {
		return nil, zerr.With(domain.ErrInvalidOperation, "reason", "anonymous operation")
	}

	return &domain.Operation{
		Name:       def.Name,
		Kind:       Kind(def.Operation),
		Document:   document,
		RootFields: collect(def.SelectionSet),
	}, nil
}

// MustParse is Parse for static documents and panics on error.
func MustParse(document string) *domain.Operation {
	op, err := Parse(document)
	if err != nil {
		panic(err)
	}
	return op
}

// Kind maps the parser's operation keyword to a domain kind.
func Kind(op ast.Operation) domain.OperationKind {
	switch op {
	case ast.Query:
		return domain.OperationQuery
	case ast.Mutation:
		return domain.OperationMutation
	case ast.Subscription:
		return domain.OperationSubscription
	default:
		return domain.OperationUnknown
	}
}

// collect returns nil unless every root selection is a plain field.
func collect(set ast.SelectionSet) []domain.RootField {
	fields := make([]domain.RootField, 0, len(set))
	for _, sel := range set {
		f, ok := sel.(*ast.Field)
		if !ok || len(f.Directives) > 0 {
			return nil
		}
		key := f.Alias
		if key == "" {
			key = f.Name
		}
		fields = append(fields, domain.RootField{
			Name:        f.Name,
			ResponseKey: key,
			Arguments:   arguments(f.Arguments),
		})
	}
	return fields
}

func arguments(list ast.ArgumentList) []domain.Argument {
	if len(list) == 0 {
		return nil
	}
	args := make([]domain.Argument, 0, len(list))
	for _, a := range list {
		value := a.Value
		args = append(args, domain.Argument{
			Name: a.Name,
			Resolve: func(vars map[string]any) (any, error) {
				return value.Value(vars)
			},
		})
	}
	return args
}
