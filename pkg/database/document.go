package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type DocumentType string

const (
	DocumentTypeInvoice        = DocumentType("FACTURA")
	DocumentTypePromissoryNote = DocumentType("PAGARE")
	DocumentTypeReceipt        = DocumentType("RECIBO")
)

// DocumentFields is the variant-independent view the matching engine works on.
type DocumentFields struct {
	ID        string
	Type      DocumentType
	Number    string
	IssueDate time.Time
	Amount    decimal.Decimal
	Currency  string
	Category  string
}

// Counterpart is one party named on a commercial document.
type Counterpart struct {
	Name  string
	TaxID string
}

// Document is implemented by the three commercial document variants.
// Counterparts returns the parties in display-preference order: the primary
// party first, so callers can fall back to the secondary when it is empty.
type Document interface {
	CommonFields() DocumentFields
	Counterparts() []Counterpart
}

type Invoice struct {
	ID          string
	Number      string
	IssueDate   time.Time
	Amount      decimal.Decimal
	Currency    string
	Category    string
	InvoiceKind string

	SellerName  string
	SellerTaxID string
	BuyerName   string
	BuyerTaxID  string
}

func (i Invoice) CommonFields() DocumentFields {
	return DocumentFields{
		ID:        i.ID,
		Type:      DocumentTypeInvoice,
		Number:    i.Number,
		IssueDate: i.IssueDate,
		Amount:    i.Amount,
		Currency:  i.Currency,
		Category:  i.Category,
	}
}

func (i Invoice) Counterparts() []Counterpart {
	return []Counterpart{
		{Name: i.SellerName, TaxID: i.SellerTaxID},
		{Name: i.BuyerName, TaxID: i.BuyerTaxID},
	}
}

type PromissoryNote struct {
	ID        string
	Number    string
	IssueDate time.Time
	DueDate   time.Time
	Amount    decimal.Decimal
	Currency  string
	Category  string

	BeneficiaryName  string
	BeneficiaryTaxID string
	DebtorName       string
	DebtorTaxID      string
}

func (p PromissoryNote) CommonFields() DocumentFields {
	return DocumentFields{
		ID:        p.ID,
		Type:      DocumentTypePromissoryNote,
		Number:    p.Number,
		IssueDate: p.IssueDate,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Category:  p.Category,
	}
}

func (p PromissoryNote) Counterparts() []Counterpart {
	return []Counterpart{
		{Name: p.BeneficiaryName, TaxID: p.BeneficiaryTaxID},
		{Name: p.DebtorName, TaxID: p.DebtorTaxID},
	}
}

type Receipt struct {
	ID            string
	Number        string
	IssueDate     time.Time
	Amount        decimal.Decimal
	Currency      string
	Category      string
	PaymentMethod string

	ReceiverName  string
	ReceiverTaxID string
	IssuerName    string
	IssuerTaxID   string
}

func (r Receipt) CommonFields() DocumentFields {
	return DocumentFields{
		ID:        r.ID,
		Type:      DocumentTypeReceipt,
		Number:    r.Number,
		IssueDate: r.IssueDate,
		Amount:    r.Amount,
		Currency:  r.Currency,
		Category:  r.Category,
	}
}

func (r Receipt) Counterparts() []Counterpart {
	return []Counterpart{
		{Name: r.ReceiverName, TaxID: r.ReceiverTaxID},
		{Name: r.IssuerName, TaxID: r.IssuerTaxID},
	}
}
