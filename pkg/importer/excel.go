package importer

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/registroapp/conciliador/pkg/database"
)

const defaultDescription = "Importado desde Excel"

var requiredColumns = []string{"FECHA", "TIPO", "MONTO"}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01-02-06", // xlsx date cells render in this layout
}

// RowError keeps the row that failed together with why, so the caller can
// report skipped rows without aborting the whole file.
type RowError struct {
	Row int
	Err error
}

type Result struct {
	Movements []*database.Movement
	Skipped   []RowError
}

// Excel parses movement spreadsheets. The first row must be a header; columns
// are located by name, so their order in the file does not matter.
type Excel struct {
}

func NewExcel() *Excel {
	return &Excel{}
}

func (e *Excel) Parse(
	ctx context.Context,
	data []byte,
) (*Result, error) {
	fileData, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open xlsx data")
	}

	if len(fileData.Sheets) == 0 {
		return nil, errors.New("no sheets found")
	}

	sheet := fileData.Sheets[0]

	if len(sheet.Rows) < 2 {
		return nil, errors.New("no rows found")
	}

	columns, err := e.headerIndex(sheet.Rows[0].Cells)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]

		if e.isEmptyRow(row.Cells) {
			continue
		}

		movement, parseErr := e.parseRow(columns, row.Cells)
		if parseErr != nil {
			result.Skipped = append(result.Skipped, RowError{
				Row: i + 1,
				Err: parseErr,
			})

			continue
		}

		result.Movements = append(result.Movements, movement)
	}

	zerolog.Ctx(ctx).Info().
		Int("movements", len(result.Movements)).
		Int("skipped", len(result.Skipped)).
		Msg("parsed excel file")

	return result, nil
}

func (e *Excel) headerIndex(cells []*xlsx.Cell) (map[string]int, error) {
	columns := map[string]int{}

	for i, cell := range cells {
		name := strings.ToUpper(strings.TrimSpace(cell.String()))
		if name == "" {
			continue
		}

		columns[name] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, errors.Newf("missing required column %s in header %s",
				required, spew.Sdump(columns))
		}
	}

	return columns, nil
}

func (e *Excel) isEmptyRow(cells []*xlsx.Cell) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell.String()) != "" {
			return false
		}
	}

	return true
}

func (e *Excel) parseRow(
	columns map[string]int,
	cells []*xlsx.Cell,
) (*database.Movement, error) {
	issueDate, err := e.parseDate(e.cellValue(columns, cells, "FECHA"))
	if err != nil {
		return nil, err
	}

	kind, err := e.parseKind(e.cellValue(columns, cells, "TIPO"))
	if err != nil {
		return nil, err
	}

	rawAmount := e.cellValue(columns, cells, "MONTO")

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse amount %s", spew.Sdump(rawAmount))
	}

	description := e.cellValue(columns, cells, "DESCRIPCION")
	if description == "" {
		description = defaultDescription
	}

	return &database.Movement{
		ID:              uuid.NewString(),
		Kind:            kind,
		Amount:          amount,
		IssueDate:       issueDate,
		Category:        e.cellValue(columns, cells, "CATEGORIA"),
		OriginName:      e.cellValue(columns, cells, "ORIGEN"),
		DestinationName: e.cellValue(columns, cells, "DESTINO"),
		Description:     description,
		PaymentMethod:   e.cellValue(columns, cells, "MEDIO_PAGO"),
		Currency:        e.cellValue(columns, cells, "MONEDA"),
	}, nil
}

func (e *Excel) cellValue(
	columns map[string]int,
	cells []*xlsx.Cell,
	name string,
) string {
	index, ok := columns[name]
	if !ok || index >= len(cells) {
		return ""
	}

	return strings.TrimSpace(cells[index].String())
}

func (e *Excel) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("missing issue date")
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, errors.Newf("failed to parse date %s", spew.Sdump(raw))
}

func (e *Excel) parseKind(raw string) (database.MovementKind, error) {
	switch database.MovementKind(strings.ToUpper(raw)) {
	case database.MovementKindIncome:
		return database.MovementKindIncome, nil
	case database.MovementKindExpense:
		return database.MovementKindExpense, nil
	case database.MovementKindDebt:
		return database.MovementKindDebt, nil
	case database.MovementKindReceivable:
		return database.MovementKindReceivable, nil
	default:
		return "", errors.Newf("unknown movement kind: %s", spew.Sdump(raw))
	}
}
