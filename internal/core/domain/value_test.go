package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/core/domain"
)

func TestStripNulls_Object(t *testing.T) {
	in := domain.FromAny(map[string]any{
		"id":      "5",
		"name":    "Alice",
		"url":     nil,
		"aliases": []any{"a", nil},
		"nested": map[string]any{
			"birthdate": nil,
			"country":   "NL",
		},
	})

	out := domain.StripNulls(in)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"5","name":"Alice","aliases":["a",null],"nested":{"country":"NL"}}`, string(raw))
	assert.Equal(t, domain.KindAbsent, out.Field("url").Kind())
	assert.Equal(t, domain.KindAbsent, out.Field("nested").Field("birthdate").Kind())
}

func TestStripNulls_RootNull(t *testing.T) {
	out := domain.StripNulls(domain.Null())
	assert.Equal(t, domain.KindAbsent, out.Kind())
	assert.Nil(t, out.Interface())
}

func TestStripNulls_LeavesInputUntouched(t *testing.T) {
	in := domain.Object(map[string]domain.Value{"a": domain.Null()})
	_ = domain.StripNulls(in)
	assert.Equal(t, domain.KindNull, in.Field("a").Kind())
}

func TestStripNullInput(t *testing.T) {
	out := domain.StripNullInput(map[string]any{"id": "1", "details": nil})
	assert.Equal(t, map[string]any{"id": "1"}, out)
	assert.Nil(t, domain.StripNullInput(nil))
}

func TestWalk_VisitsChildrenFirst(t *testing.T) {
	var order []domain.ValueKind
	domain.Walk(domain.Array(domain.Scalar(1), domain.Null()), domain.ValueVisitorFunc(func(v domain.Value) domain.Value {
		order = append(order, v.Kind())
		return v
	}))
	assert.Equal(t, []domain.ValueKind{domain.KindScalar, domain.KindNull, domain.KindArray}, order)
}
