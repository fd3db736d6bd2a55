package repo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/registroapp/conciliador/pkg/database"
)

// Postgres implements the movement and document stores plus the duplicate
// key registry on a single relational backend.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{
		db: db,
	}
}

type movementRow struct {
	ID               string `gorm:"primaryKey"`
	Kind             string
	Amount           decimal.Decimal
	IssueDate        time.Time
	Category         string
	OriginName       string
	OriginTaxID      string `gorm:"column:origin_tax_id"`
	DestinationName  string
	DestinationTaxID string `gorm:"column:destination_tax_id"`
	Description      string
	PaymentMethod    string
	Currency         string
	DocumentID       *string `gorm:"column:document_id"`
	DocumentType     string
	DocumentNumber   string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (movementRow) TableName() string {
	return "movements"
}

type invoiceRow struct {
	ID          string `gorm:"primaryKey"`
	Number      string
	IssueDate   time.Time
	Amount      decimal.Decimal
	Currency    string
	Category    string
	InvoiceKind string
	SellerName  string
	SellerTaxID string `gorm:"column:seller_tax_id"`
	BuyerName   string
	BuyerTaxID  string `gorm:"column:buyer_tax_id"`
}

func (invoiceRow) TableName() string {
	return "invoices"
}

type promissoryNoteRow struct {
	ID               string `gorm:"primaryKey"`
	Number           string
	IssueDate        time.Time
	DueDate          time.Time
	Amount           decimal.Decimal
	Currency         string
	Category         string
	BeneficiaryName  string
	BeneficiaryTaxID string `gorm:"column:beneficiary_tax_id"`
	DebtorName       string
	DebtorTaxID      string `gorm:"column:debtor_tax_id"`
}

func (promissoryNoteRow) TableName() string {
	return "promissory_notes"
}

type receiptRow struct {
	ID            string `gorm:"primaryKey"`
	Number        string
	IssueDate     time.Time
	Amount        decimal.Decimal
	Currency      string
	Category      string
	PaymentMethod string
	ReceiverName  string
	ReceiverTaxID string `gorm:"column:receiver_tax_id"`
	IssuerName    string
	IssuerTaxID   string `gorm:"column:issuer_tax_id"`
}

func (receiptRow) TableName() string {
	return "receipts"
}

type duplicateKeyRow struct {
	Key       string `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (duplicateKeyRow) TableName() string {
	return "duplicate_keys"
}

func (p *Postgres) FindByID(ctx context.Context, id string) (*database.Movement, error) {
	var row movementRow

	err := p.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch movement %s", id)
	}

	return movementFromRow(row), nil
}

func (p *Postgres) FindAll(ctx context.Context) ([]*database.Movement, error) {
	var rows []movementRow

	if err := p.db.WithContext(ctx).Order("issue_date desc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch movements")
	}

	movements := make([]*database.Movement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, movementFromRow(row))
	}

	return movements, nil
}

// Save upserts the movement inside a transaction, locking the existing row
// first so concurrent link/unlink writes on one movement serialize instead of
// silently losing an update.
func (p *Postgres) Save(ctx context.Context, movement *database.Movement) (*database.Movement, error) {
	if movement.ID == "" {
		movement.ID = uuid.NewString()
	}

	row := movementToRow(movement)
	row.UpdatedAt = time.Now().UTC()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = row.UpdatedAt
	}

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing movementRow

		lockErr := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&existing, "id = ?", row.ID).Error
		if lockErr != nil && !errors.Is(lockErr, gorm.ErrRecordNotFound) {
			return lockErr
		}
		if lockErr == nil {
			row.CreatedAt = existing.CreatedAt
		}

		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save movement %s", row.ID)
	}

	return movementFromRow(row), nil
}

func (p *Postgres) FindAllInvoices(ctx context.Context) ([]database.Invoice, error) {
	var rows []invoiceRow

	if err := p.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch invoices")
	}

	invoices := make([]database.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, invoiceFromRow(row))
	}

	return invoices, nil
}

func (p *Postgres) FindAllPromissoryNotes(ctx context.Context) ([]database.PromissoryNote, error) {
	var rows []promissoryNoteRow

	if err := p.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch promissory notes")
	}

	notes := make([]database.PromissoryNote, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, promissoryNoteFromRow(row))
	}

	return notes, nil
}

func (p *Postgres) FindAllReceipts(ctx context.Context) ([]database.Receipt, error) {
	var rows []receiptRow

	if err := p.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch receipts")
	}

	receipts := make([]database.Receipt, 0, len(rows))
	for _, row := range rows {
		receipts = append(receipts, receiptFromRow(row))
	}

	return receipts, nil
}

func (p *Postgres) FindInvoiceByID(ctx context.Context, id string) (*database.Invoice, error) {
	var row invoiceRow

	err := p.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch invoice %s", id)
	}

	invoice := invoiceFromRow(row)

	return &invoice, nil
}

func (p *Postgres) FindPromissoryNoteByID(ctx context.Context, id string) (*database.PromissoryNote, error) {
	var row promissoryNoteRow

	err := p.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch promissory note %s", id)
	}

	note := promissoryNoteFromRow(row)

	return &note, nil
}

func (p *Postgres) FindReceiptByID(ctx context.Context, id string) (*database.Receipt, error) {
	var row receiptRow

	err := p.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch receipt %s", id)
	}

	receipt := receiptFromRow(row)

	return &receipt, nil
}

func (p *Postgres) GetDuplicates(ctx context.Context, keys []string) ([]string, error) {
	var rows []duplicateKeyRow

	if err := p.db.WithContext(ctx).Where("key IN ?", keys).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch duplicate keys")
	}

	found := make([]string, 0, len(rows))
	for _, row := range rows {
		found = append(found, row.Key)
	}

	return found, nil
}

func (p *Postgres) AddDuplicateKey(ctx context.Context, key string) error {
	row := duplicateKeyRow{
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}

	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error

	return errors.Wrap(err, "failed to add duplicate key")
}

func movementToRow(m *database.Movement) movementRow {
	return movementRow{
		ID:               m.ID,
		Kind:             string(m.Kind),
		Amount:           m.Amount,
		IssueDate:        m.IssueDate,
		Category:         m.Category,
		OriginName:       m.OriginName,
		OriginTaxID:      m.OriginTaxID,
		DestinationName:  m.DestinationName,
		DestinationTaxID: m.DestinationTaxID,
		Description:      m.Description,
		PaymentMethod:    m.PaymentMethod,
		Currency:         m.Currency,
		DocumentID:       m.DocumentID,
		DocumentType:     string(m.DocumentType),
		DocumentNumber:   m.DocumentNumber,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func movementFromRow(row movementRow) *database.Movement {
	return &database.Movement{
		ID:               row.ID,
		Kind:             database.MovementKind(row.Kind),
		Amount:           row.Amount,
		IssueDate:        row.IssueDate,
		Category:         row.Category,
		OriginName:       row.OriginName,
		OriginTaxID:      row.OriginTaxID,
		DestinationName:  row.DestinationName,
		DestinationTaxID: row.DestinationTaxID,
		Description:      row.Description,
		PaymentMethod:    row.PaymentMethod,
		Currency:         row.Currency,
		DocumentID:       row.DocumentID,
		DocumentType:     database.DocumentType(row.DocumentType),
		DocumentNumber:   row.DocumentNumber,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func invoiceFromRow(row invoiceRow) database.Invoice {
	return database.Invoice{
		ID:          row.ID,
		Number:      row.Number,
		IssueDate:   row.IssueDate,
		Amount:      row.Amount,
		Currency:    row.Currency,
		Category:    row.Category,
		InvoiceKind: row.InvoiceKind,
		SellerName:  row.SellerName,
		SellerTaxID: row.SellerTaxID,
		BuyerName:   row.BuyerName,
		BuyerTaxID:  row.BuyerTaxID,
	}
}

func promissoryNoteFromRow(row promissoryNoteRow) database.PromissoryNote {
	return database.PromissoryNote{
		ID:               row.ID,
		Number:           row.Number,
		IssueDate:        row.IssueDate,
		DueDate:          row.DueDate,
		Amount:           row.Amount,
		Currency:         row.Currency,
		Category:         row.Category,
		BeneficiaryName:  row.BeneficiaryName,
		BeneficiaryTaxID: row.BeneficiaryTaxID,
		DebtorName:       row.DebtorName,
		DebtorTaxID:      row.DebtorTaxID,
	}
}

func receiptFromRow(row receiptRow) database.Receipt {
	return database.Receipt{
		ID:            row.ID,
		Number:        row.Number,
		IssueDate:     row.IssueDate,
		Amount:        row.Amount,
		Currency:      row.Currency,
		Category:      row.Category,
		PaymentMethod: row.PaymentMethod,
		ReceiverName:  row.ReceiverName,
		ReceiverTaxID: row.ReceiverTaxID,
		IssuerName:    row.IssuerName,
		IssuerTaxID:   row.IssuerTaxID,
	}
}
