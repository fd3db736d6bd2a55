package duplicates

import (
	"context"
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/registroapp/conciliador/pkg/database"
)

// Detector keeps hashed fingerprints of imported movements so re-uploading
// the same spreadsheet does not create duplicate rows.
type Detector struct {
	repo Repo
}

func NewDetector(
	repo Repo,
) *Detector {
	return &Detector{
		repo: repo,
	}
}

// MovementKey builds the fingerprint for one movement: issue date, amount,
// lower-cased description and origin. Two rows that agree on all four are
// treated as the same movement.
func MovementKey(m *database.Movement) string {
	if m.IssueDate.IsZero() && m.Amount.IsZero() {
		return ""
	}

	return strings.Join([]string{
		m.IssueDate.Format("2006-01-02"),
		m.Amount.String(),
		strings.ToLower(strings.TrimSpace(m.Description)),
		strings.ToLower(strings.TrimSpace(m.OriginName)),
	}, "|")
}

func (d *Detector) GetDuplicates(
	ctx context.Context,
	keys []string,
) (map[string]struct{}, error) {
	var hashedKeys []string
	for _, key := range keys {
		if key == "" {
			continue
		}

		hashedKeys = append(hashedKeys, d.HashKey(key))
	}

	final := map[string]struct{}{}

	if len(hashedKeys) == 0 {
		return final, nil
	}

	exists, err := d.repo.GetDuplicates(ctx, hashedKeys)
	if err != nil {
		return nil, err
	}

	for _, key := range exists {
		final[key] = struct{}{}
	}

	return final, nil
}

func (d *Detector) AddDuplicateKey(
	ctx context.Context,
	key string,
) error {
	if key == "" {
		return nil
	}

	key = d.HashKey(key)

	return d.repo.AddDuplicateKey(ctx, key)
}

func (d *Detector) HashKey(bv string) string {
	shaImpl := sha512.New()
	shaImpl.Write([]byte(bv))

	return fmt.Sprintf("%x", shaImpl.Sum(nil))
}
