package parser

import (
	"strings"

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/internal/fields"
)

// Reviewer-facing diagnostics, kept verbatim from the document review UI.
const (
	msgReviewNeeded = "自动解析完成，请人工审核"
	msgParseFailed  = "解析失败: "
	msgOCRFailed    = "OCR解析失败: "
)

// ContractResult is the immutable output of one contract parse invocation.
// raw_text is always populated once acquisition succeeds so a reviewer can
// transcribe whatever the heuristics missed.
type ContractResult struct {
	fields.ContractFields

	StampPages   []int                 `json:"stamp_pages"`
	RawText      string                `json:"raw_text"`
	ParseStatus  constants.ParseStatus `json:"parse_status"`
	ParseMessage string                `json:"parse_message"`
}

// InvoiceResult is the immutable output of one invoice parse invocation.
type InvoiceResult struct {
	fields.InvoiceFields

	RawText      string                `json:"raw_text"`
	ParseStatus  constants.ParseStatus `json:"parse_status"`
	ParseMessage string                `json:"parse_message"`
}

// BuildContractResult assembles a contract result from already-acquired
// text. Status starts optimistic: acquisition worked, so the result is
// reviewable no matter how many chains matched. Extraction runs over the
// text with a trailing newline so delimiter-terminated patterns still match
// a labeled field on the last line; only raw_text is trimmed.
func BuildContractResult(text string, pages []string) *ContractResult {
	r := &ContractResult{
		ContractFields: fields.ExtractContract(text + "\n"),
		StampPages:     []int{},
		RawText:        strings.TrimSpace(text),
		ParseStatus:    constants.ParseStatusPartial,
		ParseMessage:   msgReviewNeeded,
	}
	if flagged := fields.DetectStampPages(pages); flagged != nil {
		r.StampPages = flagged
	}
	return r
}

// BuildInvoiceResult assembles an invoice result from already-acquired text.
func BuildInvoiceResult(text string) *InvoiceResult {
	return &InvoiceResult{
		InvoiceFields: fields.ExtractInvoice(text + "\n"),
		RawText:       strings.TrimSpace(text),
		ParseStatus:   constants.ParseStatusPartial,
		ParseMessage:  msgReviewNeeded,
	}
}

// FailedContractResult shapes an acquisition failure as a storable result
// instead of an error, message carrying the cause verbatim.
func FailedContractResult(message string) *ContractResult {
	return &ContractResult{
		StampPages:   []int{},
		ParseStatus:  constants.ParseStatusFailed,
		ParseMessage: message,
	}
}

// FailedInvoiceResult shapes an acquisition failure for invoices.
func FailedInvoiceResult(message string) *InvoiceResult {
	return &InvoiceResult{
		ParseStatus:  constants.ParseStatusFailed,
		ParseMessage: message,
	}
}

// UnsupportedContractResult records the terminal unsupported state the way
// callers persist it: no raw text, message explaining the rejection.
func UnsupportedContractResult(message string) *ContractResult {
	return &ContractResult{
		StampPages:   []int{},
		ParseStatus:  constants.ParseStatusUnsupported,
		ParseMessage: message,
	}
}

// UnsupportedInvoiceResult is the invoice counterpart.
func UnsupportedInvoiceResult(message string) *InvoiceResult {
	return &InvoiceResult{
		ParseStatus:  constants.ParseStatusUnsupported,
		ParseMessage: message,
	}
}
