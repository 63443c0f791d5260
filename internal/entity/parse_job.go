package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseJob represents one parse invocation for data transfer between layers.
type ParseJob struct {
	ID           uuid.UUID       `json:"id"`
	FileID       uuid.UUID       `json:"file_id"`
	ProjectID    uuid.UUID       `json:"project_id"`
	Kind         string          `json:"kind"`
	Format       string          `json:"format"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
	Status       string          `json:"status"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	ParseStatus  *string         `json:"parse_status,omitempty"`
	NeedsReview  bool            `json:"needs_review"`
	RawText      *string         `json:"raw_text,omitempty"`
	ResultJSON   json.RawMessage `json:"result_json,omitempty"`
}
