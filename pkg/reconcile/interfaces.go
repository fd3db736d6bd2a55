package reconcile

import (
	"context"

	"github.com/registroapp/conciliador/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package reconcile_test -source=interfaces.go

// MovementRepo is the movement store. FindByID returns (nil, nil) when the
// movement does not exist; the service maps that to its NotFound sentinel.
type MovementRepo interface {
	FindByID(ctx context.Context, id string) (*database.Movement, error)
	FindAll(ctx context.Context) ([]*database.Movement, error)
	Save(ctx context.Context, movement *database.Movement) (*database.Movement, error)
}

// DocumentRepo is the unified read-only store over the three document
// variants. FindByID lookups return (nil, nil) when absent so the service can
// probe the variants in order.
type DocumentRepo interface {
	FindAllInvoices(ctx context.Context) ([]database.Invoice, error)
	FindAllPromissoryNotes(ctx context.Context) ([]database.PromissoryNote, error)
	FindAllReceipts(ctx context.Context) ([]database.Receipt, error)

	FindInvoiceByID(ctx context.Context, id string) (*database.Invoice, error)
	FindPromissoryNoteByID(ctx context.Context, id string) (*database.PromissoryNote, error)
	FindReceiptByID(ctx context.Context, id string) (*database.Receipt, error)
}
