package match

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/registroapp/conciliador/pkg/database"
)

const (
	maxTextScore = 20

	originIncrement      = 7
	destinationIncrement = 7
	descriptionIncrement = 6

	// Pre-filter tolerances, looser than anything that actually scores.
	relatedMaxDays = 30

	// Name tokens shorter than this are too noisy to match on their own
	// ("SA", "de").
	minTokenLen = 3
)

var (
	ratioExactish = decimal.RequireFromString("0.01")
	ratioClose    = decimal.RequireFromString("0.05")
	ratioNear     = decimal.RequireFromString("0.10")
	ratioRelated  = decimal.RequireFromString("0.15")
)

// Score computes the 0-100 match score between a movement and a commercial
// document. Missing fields contribute zero to their sub-score; scoring never
// fails on partially populated records.
func Score(m *database.Movement, doc database.Document) int {
	fields := doc.CommonFields()

	return DateScore(m.IssueDate, fields.IssueDate) +
		AmountScore(m.Amount, fields.Amount) +
		TextScore(m, doc.Counterparts()) +
		CategoryScore(m.Category, fields.Category)
}

// Related is the cheap candidate pre-filter applied before scoring: amount
// within 15%, date within 30 days, or any counterpart text overlap. Every
// document that can reach the suggestion cutoff satisfies at least one of
// these, so filtering here only trims work.
func Related(m *database.Movement, doc database.Document) bool {
	fields := doc.CommonFields()

	if amountWithin(m.Amount, fields.Amount, ratioRelated) {
		return true
	}

	if days, ok := daysApart(m.IssueDate, fields.IssueDate); ok && days <= relatedMaxDays {
		return true
	}

	return TextScore(m, doc.Counterparts()) > 0
}

// DateScore awards up to 40 points for issue-date proximity in whole days.
func DateScore(movementDate, documentDate time.Time) int {
	days, ok := daysApart(movementDate, documentDate)
	if !ok {
		return 0
	}

	switch {
	case days == 0:
		return 40
	case days <= 3:
		return 30
	case days <= 7:
		return 15
	case days <= 15:
		return 5
	default:
		return 0
	}
}

// AmountScore awards up to 30 points for relative amount proximity. Absolute
// values are compared so the sign convention on movements does not distort
// matching. A zero document amount never matches.
func AmountScore(movementAmount, documentAmount decimal.Decimal) int {
	docAbs := documentAmount.Abs()
	if docAbs.IsZero() {
		return 0
	}

	diff := movementAmount.Abs().Sub(docAbs).Abs()
	if diff.IsZero() {
		return 30
	}

	ratio := diff.Div(docAbs)

	switch {
	case ratio.LessThanOrEqual(ratioExactish):
		return 28
	case ratio.LessThanOrEqual(ratioClose):
		return 20
	case ratio.LessThanOrEqual(ratioNear):
		return 10
	default:
		return 0
	}
}

// TextScore awards up to 20 points for containment matches between the
// document counterpart names and the movement origin, destination and
// description. Increments accumulate across names and fields and the total is
// clamped, not averaged.
func TextScore(m *database.Movement, counterparts []database.Counterpart) int {
	origin := normalize(m.OriginName)
	destination := normalize(m.DestinationName)
	description := normalize(m.Description)

	score := 0

	for _, cp := range counterparts {
		name := normalize(cp.Name)
		if name == "" {
			continue
		}

		if contains(origin, name) {
			score += originIncrement
		}
		if contains(destination, name) {
			score += destinationIncrement
		}
		if contains(description, name) {
			score += descriptionIncrement
		}
	}

	if score > maxTextScore {
		return maxTextScore
	}

	return score
}

// CategoryScore awards 10 points when both categories are non-empty and equal
// ignoring case.
func CategoryScore(movementCategory, documentCategory string) int {
	if movementCategory == "" || documentCategory == "" {
		return 0
	}

	if strings.EqualFold(movementCategory, documentCategory) {
		return 10
	}

	return 0
}

func amountWithin(movementAmount, documentAmount, tolerance decimal.Decimal) bool {
	docAbs := documentAmount.Abs()
	if docAbs.IsZero() {
		return false
	}

	diff := movementAmount.Abs().Sub(docAbs).Abs()

	return diff.Div(docAbs).LessThanOrEqual(tolerance)
}

// daysApart returns the absolute difference in whole calendar days. ok is
// false when either date is missing.
func daysApart(a, b time.Time) (int, bool) {
	if a.IsZero() || b.IsZero() {
		return 0, false
	}

	days := int(truncateToDay(a).Sub(truncateToDay(b)).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return days, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// contains is the symmetric containment check used by the matching rules,
// with a token-level fallback so "Acme SRL" still matches a description like
// "pago proveedor acme". Empty movement fields never match: "" is a substring
// of everything.
func contains(field, name string) bool {
	if field == "" {
		return false
	}

	if strings.Contains(field, name) || strings.Contains(name, field) {
		return true
	}

	for _, token := range strings.Fields(name) {
		if len(token) >= minTokenLen && strings.Contains(field, token) {
			return true
		}
	}

	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
