package db

import "context"

// Transactor abstracts transactional execution so use cases can be tested
// without a real database.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
