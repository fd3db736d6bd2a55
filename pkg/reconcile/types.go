package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/registroapp/conciliador/pkg/database"
)

// Source is the advisory origin tag attached to movement listings. It is
// derived from free-text heuristics, is display-only and never influences
// scoring.
type Source string

const (
	SourceManual           = Source("MANUAL")
	SourceFileImport       = Source("FILE_IMPORT")
	SourcePaymentProcessor = Source("PAYMENT_PROCESSOR")
)

// MovementView is a movement annotated with its reconciliation state, as
// consumed by the HTTP layer.
type MovementView struct {
	ID              string                `json:"id"`
	Kind            database.MovementKind `json:"kind"`
	Amount          decimal.Decimal       `json:"amount"`
	IssueDate       time.Time             `json:"issueDate"`
	Category        string                `json:"category,omitempty"`
	OriginName      string                `json:"originName,omitempty"`
	DestinationName string                `json:"destinationName,omitempty"`
	Description     string                `json:"description,omitempty"`
	PaymentMethod   string                `json:"paymentMethod,omitempty"`
	Currency        string                `json:"currency"`
	Source          Source                `json:"source"`

	Reconciled     bool                  `json:"reconciled"`
	DocumentID     *string               `json:"documentId,omitempty"`
	DocumentType   database.DocumentType `json:"documentType,omitempty"`
	DocumentNumber string                `json:"documentNumber,omitempty"`
}

// Stats summarizes the reconciliation state of the whole movement set.
type Stats struct {
	Total             int     `json:"total"`
	Reconciled        int     `json:"reconciled"`
	Unreconciled      int     `json:"unreconciled"`
	ReconciledPercent float64 `json:"reconciledPercent"`
}
