// Package records stores the two-field notes a user attaches to their
// account. This is a plain insert/list store with no coupling to the
// authorization or retrieval flows.
package records

import "time"

// Record is one saved note, scoped to a user.
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Field1    string    `json:"field1"`
	Field2    string    `json:"field2"`
	CreatedAt time.Time `json:"createdAt"`
}
