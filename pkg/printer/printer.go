package printer

import (
	"context"
	"fmt"
	"strings"

	"github.com/registroapp/conciliador/pkg/database"
	"github.com/registroapp/conciliador/pkg/importer"
	"github.com/registroapp/conciliador/pkg/reconcile"
)

// Printer renders import summaries and reconciliation stats for the CLI.
type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) ImportSummary(
	_ context.Context,
	saved []*database.Movement,
	duplicates []*database.Movement,
	skipped []importer.RowError,
) string {
	var sb strings.Builder

	total := len(saved) + len(duplicates) + len(skipped)

	sb.WriteString(fmt.Sprintf("Total rows: %v", total))
	sb.WriteString(fmt.Sprintf("\nImported: %v 🔥", len(saved)))
	sb.WriteString(fmt.Sprintf("\nDuplicates: %v ✨", len(duplicates)))
	sb.WriteString(fmt.Sprintf("\nSkipped: %v 🚒", len(skipped)))

	if len(saved) == total && total > 0 {
		sb.WriteString("\n\nAll rows imported! 🎉")
	}

	for _, rowErr := range skipped {
		sb.WriteString(fmt.Sprintf("\n\nRow %v: ❌", rowErr.Row))
		sb.WriteString(fmt.Sprintf("\nERROR: %s", rowErr.Err))
	}

	if len(duplicates) > 0 {
		sb.WriteString("\n")

		for _, movement := range duplicates {
			sb.WriteString("\nDuplicate: ✨\n")
			p.FancyPrintMovement(movement, &sb)
		}
	}

	return sb.String()
}

func (p *Printer) Stats(
	_ context.Context,
	stats *reconcile.Stats,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total movements: %v", stats.Total))
	sb.WriteString(fmt.Sprintf("\nReconciled: %v ✅", stats.Reconciled))
	sb.WriteString(fmt.Sprintf("\nUnreconciled: %v", stats.Unreconciled))
	sb.WriteString(fmt.Sprintf("\nReconciled percent: %.2f%%", stats.ReconciledPercent))

	if stats.Total > 0 && stats.Reconciled == stats.Total {
		sb.WriteString("\n\nEverything is reconciled! 🎉")
	}

	return sb.String()
}

func (p *Printer) FancyPrintMovement(movement *database.Movement, sb *strings.Builder) {
	sb.WriteString(fmt.Sprintf("Date: %s", movement.IssueDate.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("\nKind: %v", movement.Kind))

	if !movement.Amount.IsZero() {
		sb.WriteString(fmt.Sprintf("\nAmount: %v%v", movement.Amount.StringFixed(2), movement.Currency))
	}
	if movement.OriginName != "" {
		sb.WriteString(fmt.Sprintf("\nOrigin: %s", movement.OriginName))
	}
	if movement.DestinationName != "" {
		sb.WriteString(fmt.Sprintf("\nDestination: %s", movement.DestinationName))
	}

	sb.WriteString(fmt.Sprintf("\nDescription: %s", movement.Description))

	if movement.Reconciled() {
		sb.WriteString(fmt.Sprintf("\nLinked to: %v %s", movement.DocumentType, movement.DocumentNumber))
	}

	sb.WriteString("\n====================\n")
}
