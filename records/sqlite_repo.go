package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRepo implements Repo using SQLite.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo creates the repo and its schema.
func NewSQLiteRepo(db *sql.DB) (*SQLiteRepo, error) {
	schema := `
	CREATE TABLE IF NOT EXISTS record (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		field1 TEXT NOT NULL,
		field2 TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_record_user ON record(user_id, created_at DESC);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("[NewSQLiteRepo] create schema: %w", err)
	}
	return &SQLiteRepo{db: db}, nil
}

var _ Repo = (*SQLiteRepo)(nil)

func (r *SQLiteRepo) Insert(ctx context.Context, record Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO record (id, user_id, field1, field2, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		record.ID,
		record.UserID,
		record.Field1,
		record.Field2,
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("[SQLiteRepo.Insert] %w", err)
	}
	return nil
}

func (r *SQLiteRepo) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, field1, field2, created_at
		FROM record
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("[SQLiteRepo.ListByUser] %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var rec Record
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Field1, &rec.Field2, &createdAt); err != nil {
			return nil, fmt.Errorf("[SQLiteRepo.ListByUser] scan: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}
