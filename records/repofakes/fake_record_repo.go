// Package repofakes provides an in-memory record repo for tests.
package repofakes

import (
	"context"
	"sort"
	"sync"

	"github.com/kayaomerr/ytsummarizer/records"
)

// FakeRecordRepo is an in-memory records.Repo.
type FakeRecordRepo struct {
	mu   sync.Mutex
	rows []records.Record

	InsertErr error
	ListErr   error
}

func NewFakeRecordRepo() *FakeRecordRepo {
	return &FakeRecordRepo{}
}

var _ records.Repo = (*FakeRecordRepo)(nil)

func (f *FakeRecordRepo) Insert(_ context.Context, record records.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertErr != nil {
		return f.InsertErr
	}
	f.rows = append(f.rows, record)
	return nil
}

func (f *FakeRecordRepo) ListByUser(_ context.Context, userID string) ([]records.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	out := []records.Record{}
	for _, rec := range f.rows {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
