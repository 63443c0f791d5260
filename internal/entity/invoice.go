package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Invoice represents an invoice record for data transfer between layers.
type Invoice struct {
	ID            uuid.UUID       `json:"id"`
	ProjectID     uuid.UUID       `json:"project_id"`
	InvoiceNumber *string         `json:"invoice_number,omitempty"`
	InvoiceCode   *string         `json:"invoice_code,omitempty"`
	Amount        *float64        `json:"amount,omitempty"`
	InvoiceDate   *time.Time      `json:"invoice_date,omitempty"`
	Seller        *string         `json:"seller,omitempty"`
	Buyer         *string         `json:"buyer,omitempty"`
	TaxAmount     *float64        `json:"tax_amount,omitempty"`
	Remark        *string         `json:"remark,omitempty"`
	FilePath      *string         `json:"file_path,omitempty"`
	ParsedData    json.RawMessage `json:"parsed_data,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
