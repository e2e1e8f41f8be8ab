package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/stashql/internal/core/ports/mocks"
	"go.trai.ch/stashql/internal/engine/router"
	"go.uber.org/mock/gomock"
)

func TestRoute_NeverMisroutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	request := mocks.NewMockTransport(ctrl)
	stream := mocks.NewMockTransport(ctrl)
	r := router.New(request, stream)

	kinds := map[domain.OperationKind]any{
		domain.OperationQuery:        request,
		domain.OperationMutation:     request,
		domain.OperationSubscription: stream,
	}
	for kind, want := range kinds {
		got, err := r.Route(&domain.Operation{Name: kind.String(), Kind: kind})
		require.NoError(t, err)
		assert.Same(t, want, got, kind.String())
	}
}

func TestRoute_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := router.New(mocks.NewMockTransport(ctrl), mocks.NewMockTransport(ctrl))

	_, err := r.Route(&domain.Operation{Name: "Broken"})
	if !errors.Is(err, domain.ErrUnknownOperationKind) {
		t.Fatalf("expected ErrUnknownOperationKind, got %v", err)
	}
	_, err = r.Route(nil)
	assert.ErrorIs(t, err, domain.ErrUnknownOperationKind)
}

func TestRequest_JobStatusGoesToStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	request := mocks.NewMockTransport(ctrl)
	stream := mocks.NewMockTransport(ctrl)
	resp := mocks.NewMockResponse(ctrl)
	r := router.New(request, stream)

	req := domain.Request{Operation: &domain.Operation{Name: "MetadataUpdate", Kind: domain.OperationSubscription}}
	stream.EXPECT().Request(gomock.Any(), req).Return(resp, nil)
	request.EXPECT().Request(gomock.Any(), gomock.Any()).Times(0)

	got, err := r.Request(context.Background(), req)
	require.NoError(t, err)
	assert.Same(t, resp, got)
}

func TestRequest_UnknownKindSkipsTransports(t *testing.T) {
	ctrl := gomock.NewController(t)
	request := mocks.NewMockTransport(ctrl)
	stream := mocks.NewMockTransport(ctrl)
	r := router.New(request, stream)

	_, err := r.Request(context.Background(), domain.Request{Operation: &domain.Operation{Name: "X"}})
	assert.ErrorIs(t, err, domain.ErrUnknownOperationKind)
}

func TestValidate(t *testing.T) {
	ok := []*domain.Operation{
		{Name: "A", Kind: domain.OperationQuery},
		{Name: "B", Kind: domain.OperationMutation},
		{Name: "C", Kind: domain.OperationSubscription},
	}
	require.NoError(t, router.Validate(ok))

	tests := []struct {
		name string
		ops  []*domain.Operation
		want error
	}{
		{"unknown kind", []*domain.Operation{{Name: "A"}}, domain.ErrUnknownOperationKind},
		{"nil", []*domain.Operation{nil}, domain.ErrUnknownOperationKind},
		{"unnamed", []*domain.Operation{{Kind: domain.OperationQuery}}, domain.ErrInvalidOperation},
		{"duplicate", []*domain.Operation{ok[0], ok[0]}, domain.ErrDuplicateOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, router.Validate(tt.ops), tt.want)
		})
	}
}
