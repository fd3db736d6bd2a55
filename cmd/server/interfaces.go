package main

import (
	"context"

	"github.com/registroapp/conciliador/pkg/reconcile"
	"github.com/registroapp/conciliador/pkg/suggest"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package main -source=interfaces.go

type ReconcileService interface {
	ListAll(ctx context.Context) ([]reconcile.MovementView, error)
	ListUnreconciled(ctx context.Context) ([]reconcile.MovementView, error)
	Suggest(ctx context.Context, movementID string) ([]suggest.Suggestion, error)
	Link(ctx context.Context, movementID, documentID string) (*reconcile.MovementView, error)
	Unlink(ctx context.Context, movementID string) (*reconcile.MovementView, error)
	Stats(ctx context.Context) (*reconcile.Stats, error)
}
