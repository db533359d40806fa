package records

import "context"

// Repo persists records.
type Repo interface {
	// Insert stores one record.
	Insert(ctx context.Context, record Record) error

	// ListByUser returns one user's records, newest first.
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}
