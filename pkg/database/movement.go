package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementKind string

const (
	MovementKindIncome     = MovementKind("INGRESO")
	MovementKindExpense    = MovementKind("EGRESO")
	MovementKindDebt       = MovementKind("DEUDA")
	MovementKindReceivable = MovementKind("ACREENCIA")
)

// Movement is a single financial event, possibly linked to one commercial
// document. A movement with a non-nil DocumentID is reconciled.
type Movement struct {
	ID               string
	Kind             MovementKind
	Amount           decimal.Decimal
	IssueDate        time.Time
	Category         string
	OriginName       string
	OriginTaxID      string
	DestinationName  string
	DestinationTaxID string
	Description      string
	PaymentMethod    string
	Currency         string

	// Linked document reference. Number and type are denormalized at link
	// time so listings do not need a second lookup.
	DocumentID     *string
	DocumentType   DocumentType
	DocumentNumber string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *Movement) Reconciled() bool {
	return m.DocumentID != nil
}
