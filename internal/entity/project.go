package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project groups contracts and invoices under one engagement for data
// transfer between layers.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
