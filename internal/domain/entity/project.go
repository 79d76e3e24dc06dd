package entity

import (
	"encoding/json"
	"time"
)

// Project is a user-owned resource. UserID is fixed at creation and
// never updated afterwards.
//
// Code is an opaque structured payload (JSON array or object). It is
// stored and returned verbatim; a nil Code serializes as null.
type Project struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Code      json.RawMessage `json:"code"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
