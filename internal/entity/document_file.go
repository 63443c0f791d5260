package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentFile represents an ingested document file for data transfer between layers.
type DocumentFile struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Kind        string     `json:"kind"` // constants.KindContract | constants.KindInvoice
	ContractID  *uuid.UUID `json:"contract_id,omitempty"`
	InvoiceID   *uuid.UUID `json:"invoice_id,omitempty"`
	SourcePath  string     `json:"source_path"`
	ContentHash []byte     `json:"content_hash"`
	Filename    string     `json:"filename"`
	FileExt     string     `json:"file_ext"`
	FileSize    int        `json:"file_size"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
