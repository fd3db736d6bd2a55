package duplicates

import "context"

//go:generate mockgen -destination interfaces_mocks_test.go -package duplicates_test -source=interfaces.go

type Repo interface {
	GetDuplicates(ctx context.Context, keys []string) ([]string, error)
	AddDuplicateKey(ctx context.Context, key string) error
}
