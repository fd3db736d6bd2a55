package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func GetMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2025_02_11_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists movements
(
    id                 text not null
        constraint movements_pk
            primary key,
    kind               text,
    amount             decimal,
    issue_date         timestamp,
    category           text,
    origin_name        text,
    origin_tax_id      text,
    destination_name   text,
    destination_tax_id text,
    description        text,
    payment_method     text,
    currency           text,
    document_id        text,
    document_type      text,
    document_number    text,
    created_at         timestamp,
    updated_at         timestamp
);
`).Error
			},
		},
		{
			ID: "2025_02_11_Invoices",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists invoices
(
    id            text not null
        constraint invoices_pk
            primary key,
    number        text,
    issue_date    timestamp,
    amount        decimal,
    currency      text,
    category      text,
    invoice_kind  text,
    seller_name   text,
    seller_tax_id text,
    buyer_name    text,
    buyer_tax_id  text
);
`).Error
			},
		},
		{
			ID: "2025_02_11_PromissoryNotes",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists promissory_notes
(
    id                 text not null
        constraint promissory_notes_pk
            primary key,
    number             text,
    issue_date         timestamp,
    due_date           timestamp,
    amount             decimal,
    currency           text,
    category           text,
    beneficiary_name   text,
    beneficiary_tax_id text,
    debtor_name        text,
    debtor_tax_id      text
);
`).Error
			},
		},
		{
			ID: "2025_02_11_Receipts",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists receipts
(
    id              text not null
        constraint receipts_pk
            primary key,
    number          text,
    issue_date      timestamp,
    amount          decimal,
    currency        text,
    category        text,
    payment_method  text,
    receiver_name   text,
    receiver_tax_id text,
    issuer_name     text,
    issuer_tax_id   text
);
`).Error
			},
		},
		{
			ID: "2025_03_02_DuplicateKeys",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists duplicate_keys
(
    key        text not null
        constraint duplicate_keys_pk
            primary key,
    created_at timestamp
);
`).Error
			},
		},
		{
			ID: "2025_04_18_MovementsReconciliationIndex",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create index if not exists movements_document_id_idx
    on movements (document_id);
`).Error
			},
		},
	}
}
