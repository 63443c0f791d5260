package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Contract represents a contract record for data transfer between layers.
// Every business field is optional: values arrive from user input, from the
// parse pipeline, or not at all.
type Contract struct {
	ID             uuid.UUID       `json:"id"`
	ProjectID      uuid.UUID       `json:"project_id"`
	ContractNumber *string         `json:"contract_number,omitempty"`
	ContractName   *string         `json:"contract_name,omitempty"`
	PartyA         *string         `json:"party_a,omitempty"`
	PartyB         *string         `json:"party_b,omitempty"`
	Amount         *float64        `json:"amount,omitempty"`
	SignDate       *time.Time      `json:"sign_date,omitempty"`
	EffectiveDate  *time.Time      `json:"effective_date,omitempty"`
	ExpiryDate     *time.Time      `json:"expiry_date,omitempty"`
	FilePath       *string         `json:"file_path,omitempty"`
	ParsedData     json.RawMessage `json:"parsed_data,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
