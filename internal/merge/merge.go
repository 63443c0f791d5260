// Package merge reconciles parse results with user-maintained records.
// Extraction is advisory: a value is copied only into a field the user left
// empty, and explicit input is never overwritten. The full result is still
// attached as an audit blob so reviewers see everything that was extracted,
// merged or not.
package merge

import (
	"encoding/json"
	"time"

	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/fields"
	"github.com/zhenweng/contract-parser/internal/parser"
)

func emptyStr(p *string) bool {
	return p == nil || *p == ""
}

func setStr(dst **string, src *string) bool {
	if !emptyStr(*dst) || emptyStr(src) {
		return false
	}
	v := *src
	*dst = &v
	return true
}

func setFloat(dst **float64, src *float64) bool {
	if *dst != nil || src == nil {
		return false
	}
	v := *src
	*dst = &v
	return true
}

func setDate(dst **time.Time, src *string) bool {
	if *dst != nil || src == nil {
		return false
	}
	t, ok := fields.ParseISODateTime(*src)
	if !ok {
		return false
	}
	*dst = &t
	return true
}

// ApplyContract copies extracted values into empty contract fields and
// attaches the result as the contract's audit blob. Reports whether any
// business field changed. Calling it again with the same result is a no-op
// for the business fields.
func ApplyContract(c *entity.Contract, r *parser.ContractResult) bool {
	if c == nil || r == nil {
		return false
	}
	changed := false
	changed = setStr(&c.ContractNumber, r.ContractNumber) || changed
	changed = setStr(&c.ContractName, r.ContractName) || changed
	changed = setStr(&c.PartyA, r.PartyA) || changed
	changed = setStr(&c.PartyB, r.PartyB) || changed
	changed = setFloat(&c.Amount, r.Amount) || changed
	changed = setDate(&c.SignDate, r.SignDate) || changed
	changed = setDate(&c.EffectiveDate, r.EffectiveDate) || changed
	changed = setDate(&c.ExpiryDate, r.ExpiryDate) || changed
	if blob, err := json.Marshal(r); err == nil {
		c.ParsedData = blob
	}
	return changed
}

// ApplyInvoice copies extracted values into empty invoice fields and
// attaches the result as the invoice's audit blob.
func ApplyInvoice(inv *entity.Invoice, r *parser.InvoiceResult) bool {
	if inv == nil || r == nil {
		return false
	}
	changed := false
	changed = setStr(&inv.InvoiceNumber, r.InvoiceNumber) || changed
	changed = setStr(&inv.InvoiceCode, r.InvoiceCode) || changed
	changed = setFloat(&inv.Amount, r.Amount) || changed
	changed = setDate(&inv.InvoiceDate, r.InvoiceDate) || changed
	changed = setStr(&inv.Seller, r.Seller) || changed
	changed = setStr(&inv.Buyer, r.Buyer) || changed
	changed = setFloat(&inv.TaxAmount, r.TaxAmount) || changed
	if blob, err := json.Marshal(r); err == nil {
		inv.ParsedData = blob
	}
	return changed
}
