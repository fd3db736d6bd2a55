package suggest

import (
	"context"
	"sort"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/registroapp/conciliador/pkg/database"
	"github.com/registroapp/conciliador/pkg/match"
)

type Confidence string

const (
	ConfidenceHigh   = Confidence("ALTA")
	ConfidenceMedium = Confidence("MEDIA")
	ConfidenceLow    = Confidence("BAJA")
)

const (
	minScore       = 30
	maxSuggestions = 10

	defaultPoolSize = 8
)

// Suggestion is a scored candidate document for one movement. It is derived
// on demand and never persisted.
type Suggestion struct {
	DocumentID       string                `json:"documentId"`
	DocumentType     database.DocumentType `json:"documentType"`
	DocumentNumber   string                `json:"documentNumber"`
	IssueDate        time.Time             `json:"issueDate"`
	Amount           decimal.Decimal       `json:"amount"`
	Currency         string                `json:"currency"`
	Category         string                `json:"category"`
	CounterpartName  string                `json:"counterpartName"`
	CounterpartTaxID string                `json:"counterpartTaxId"`
	Score            int                   `json:"score"`
	Confidence       Confidence            `json:"confidence"`
	Rationale        string                `json:"rationale"`
}

type Ranker struct {
	poolSize int
}

func NewRanker() *Ranker {
	return &Ranker{
		poolSize: defaultPoolSize,
	}
}

// Rank scores the candidate pool against the movement and returns at most ten
// suggestions with score >= 30, ordered by score descending. Ties keep pool
// order, so the result is deterministic given identical input ordering.
func (r *Ranker) Rank(
	ctx context.Context,
	movement *database.Movement,
	pool []database.Document,
) []Suggestion {
	candidates := lo.Filter(pool, func(doc database.Document, _ int) bool {
		return match.Related(movement, doc)
	})

	zerolog.Ctx(ctx).Debug().
		Str("movement_id", movement.ID).
		Int("pool", len(pool)).
		Int("candidates", len(candidates)).
		Msg("scoring candidate documents")

	// Scoring is pure, so every candidate can be scored independently.
	// Indexed writes keep the result deterministic.
	scores := make([]int, len(candidates))

	wp := workerpool.New(r.poolSize)
	for i, doc := range candidates {
		i, doc := i, doc

		wp.Submit(func() {
			scores[i] = match.Score(movement, doc)
		})
	}
	wp.StopWait()

	suggestions := make([]Suggestion, 0, len(candidates))
	for i, doc := range candidates {
		if scores[i] < minScore {
			continue
		}

		suggestions = append(suggestions, newSuggestion(doc, scores[i]))
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	zerolog.Ctx(ctx).Debug().
		Str("movement_id", movement.ID).
		Int("suggestions", len(suggestions)).
		Msg("ranked suggestions")

	return suggestions
}

func newSuggestion(doc database.Document, score int) Suggestion {
	fields := doc.CommonFields()
	name, taxID := displayCounterpart(doc.Counterparts())
	confidence := ConfidenceFor(score)

	return Suggestion{
		DocumentID:       fields.ID,
		DocumentType:     fields.Type,
		DocumentNumber:   fields.Number,
		IssueDate:        fields.IssueDate,
		Amount:           fields.Amount,
		Currency:         fields.Currency,
		Category:         fields.Category,
		CounterpartName:  name,
		CounterpartTaxID: taxID,
		Score:            score,
		Confidence:       confidence,
		Rationale:        rationaleFor(confidence),
	}
}

// displayCounterpart picks the first non-empty name and tax id, preferring
// the variant's primary party.
func displayCounterpart(counterparts []database.Counterpart) (string, string) {
	var name, taxID string

	for _, cp := range counterparts {
		if name == "" && cp.Name != "" {
			name = cp.Name
		}
		if taxID == "" && cp.TaxID != "" {
			taxID = cp.TaxID
		}
	}

	return name, taxID
}

// ConfidenceFor buckets a score into the ALTA/MEDIA/BAJA display tiers.
func ConfidenceFor(score int) Confidence {
	switch {
	case score >= 70:
		return ConfidenceHigh
	case score >= 50:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func rationaleFor(confidence Confidence) string {
	switch confidence {
	case ConfidenceHigh:
		return "Coincidencia alta en fecha, monto y origen/destino"
	case ConfidenceMedium:
		return "Coincidencia media en algunos criterios"
	default:
		return "Coincidencia baja, verificar manualmente"
	}
}
