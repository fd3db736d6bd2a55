package reconcile

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/registroapp/conciliador/pkg/common"
	"github.com/registroapp/conciliador/pkg/database"
	"github.com/registroapp/conciliador/pkg/suggest"
)

// Service coordinates suggestion runs and owns the link/unlink state
// transition on movements. Documents are never mutated here.
type Service struct {
	movements MovementRepo
	documents DocumentRepo
	ranker    *suggest.Ranker

	// lockMu guards locks; each movement gets its own mutex so link/unlink
	// serialize per movement without blocking unrelated movements.
	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func NewService(
	movements MovementRepo,
	documents DocumentRepo,
) *Service {
	return &Service{
		movements: movements,
		documents: documents,
		ranker:    suggest.NewRanker(),
		locks:     map[string]*sync.Mutex{},
	}
}

// ListAll returns every movement annotated with its reconciliation state and
// advisory source tag.
func (s *Service) ListAll(ctx context.Context) ([]MovementView, error) {
	movements, err := s.movements.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(movements, func(m *database.Movement, _ int) MovementView {
		return viewOf(m)
	}), nil
}

// ListUnreconciled returns movements without a linked document.
func (s *Service) ListUnreconciled(ctx context.Context) ([]MovementView, error) {
	movements, err := s.movements.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	unreconciled := lo.Filter(movements, func(m *database.Movement, _ int) bool {
		return !m.Reconciled()
	})

	return lo.Map(unreconciled, func(m *database.Movement, _ int) MovementView {
		return viewOf(m)
	}), nil
}

// Suggest ranks the full candidate pool against one movement and returns up
// to ten scored suggestions.
func (s *Service) Suggest(ctx context.Context, movementID string) ([]suggest.Suggestion, error) {
	movement, err := s.movements.FindByID(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, errors.Wrapf(common.ErrMovementNotFound, "movement %s", movementID)
	}

	pool, err := s.candidatePool(ctx)
	if err != nil {
		return nil, err
	}

	return s.ranker.Rank(ctx, movement, pool), nil
}

// Link sets the movement's document reference. The document id is resolved by
// probing invoices, then promissory notes, then receipts. Linking is an
// idempotent overwrite and intentionally does not validate match quality:
// any document may be force-linked by the user.
func (s *Service) Link(ctx context.Context, movementID, documentID string) (*MovementView, error) {
	unlock := s.lockMovement(movementID)
	defer unlock()

	movement, err := s.movements.FindByID(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, errors.Wrapf(common.ErrMovementNotFound, "movement %s", movementID)
	}

	doc, err := s.resolveDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.Wrapf(common.ErrDocumentNotFound, "document %s", documentID)
	}

	fields := doc.CommonFields()
	movement.DocumentID = &fields.ID
	movement.DocumentType = fields.Type
	movement.DocumentNumber = fields.Number

	saved, err := s.movements.Save(ctx, movement)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("movement_id", movementID).
		Str("document_id", fields.ID).
		Str("document_type", string(fields.Type)).
		Msg("movement linked")

	view := viewOf(saved)

	return &view, nil
}

// Unlink clears the movement's document reference. Unlinking an already
// unreconciled movement succeeds silently.
func (s *Service) Unlink(ctx context.Context, movementID string) (*MovementView, error) {
	unlock := s.lockMovement(movementID)
	defer unlock()

	movement, err := s.movements.FindByID(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, errors.Wrapf(common.ErrMovementNotFound, "movement %s", movementID)
	}

	movement.DocumentID = nil
	movement.DocumentType = ""
	movement.DocumentNumber = ""

	saved, err := s.movements.Save(ctx, movement)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("movement_id", movementID).
		Msg("movement unlinked")

	view := viewOf(saved)

	return &view, nil
}

// Stats aggregates the reconciliation state over all movements.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	movements, err := s.movements.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Total: len(movements),
	}

	for _, m := range movements {
		if m.Reconciled() {
			stats.Reconciled++
		} else {
			stats.Unreconciled++
		}
	}

	if stats.Total > 0 {
		stats.ReconciledPercent = float64(stats.Reconciled) * 100 / float64(stats.Total)
	}

	return stats, nil
}

func (s *Service) candidatePool(ctx context.Context) ([]database.Document, error) {
	invoices, err := s.documents.FindAllInvoices(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.documents.FindAllPromissoryNotes(ctx)
	if err != nil {
		return nil, err
	}

	receipts, err := s.documents.FindAllReceipts(ctx)
	if err != nil {
		return nil, err
	}

	pool := make([]database.Document, 0, len(invoices)+len(notes)+len(receipts))
	for _, inv := range invoices {
		pool = append(pool, inv)
	}
	for _, note := range notes {
		pool = append(pool, note)
	}
	for _, receipt := range receipts {
		pool = append(pool, receipt)
	}

	return pool, nil
}

// resolveDocument probes the variant stores in a fixed order. Returns
// (nil, nil) when the id exists in none of them.
func (s *Service) resolveDocument(ctx context.Context, documentID string) (database.Document, error) {
	invoice, err := s.documents.FindInvoiceByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if invoice != nil {
		return *invoice, nil
	}

	note, err := s.documents.FindPromissoryNoteByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if note != nil {
		return *note, nil
	}

	receipt, err := s.documents.FindReceiptByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if receipt != nil {
		return *receipt, nil
	}

	return nil, nil
}

func (s *Service) lockMovement(movementID string) func() {
	s.lockMu.Lock()
	mu, ok := s.locks[movementID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[movementID] = mu
	}
	s.lockMu.Unlock()

	mu.Lock()

	return mu.Unlock
}

func viewOf(m *database.Movement) MovementView {
	return MovementView{
		ID:              m.ID,
		Kind:            m.Kind,
		Amount:          m.Amount,
		IssueDate:       m.IssueDate,
		Category:        m.Category,
		OriginName:      m.OriginName,
		DestinationName: m.DestinationName,
		Description:     m.Description,
		PaymentMethod:   m.PaymentMethod,
		Currency:        m.Currency,
		Source:          sourceOf(m),
		Reconciled:      m.Reconciled(),
		DocumentID:      m.DocumentID,
		DocumentType:    m.DocumentType,
		DocumentNumber:  m.DocumentNumber,
	}
}

// sourceOf tags the probable origin of a movement from free-text hints. Best
// effort only.
func sourceOf(m *database.Movement) Source {
	if strings.Contains(strings.ToLower(m.OriginName), "mercadopago") {
		return SourcePaymentProcessor
	}

	if strings.Contains(strings.ToLower(m.Description), "excel") {
		return SourceFileImport
	}

	return SourceManual
}
