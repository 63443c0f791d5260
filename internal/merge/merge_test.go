package merge

import (
	"testing"
	"time"

	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/parser"
)

func sp(s string) *string   { return &s }
func fp(f float64) *float64 { return &f }

func contractResult() *parser.ContractResult {
	r := parser.BuildContractResult(
		"合同编号：HT-2024-0012\n合同名称：采购合同\n合同金额：1,000.00元\n签约日期：2024年3月5日",
		nil,
	)
	return r
}

func TestApplyContractFillsEmptyFields(t *testing.T) {
	c := &entity.Contract{}
	if !ApplyContract(c, contractResult()) {
		t.Fatal("expected fields to change")
	}
	if c.ContractNumber == nil || *c.ContractNumber != "HT-2024-0012" {
		t.Errorf("contract_number = %v", c.ContractNumber)
	}
	if c.Amount == nil || *c.Amount != 1000.00 {
		t.Errorf("amount = %v", c.Amount)
	}
	if c.SignDate == nil || !c.SignDate.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("sign_date = %v", c.SignDate)
	}
	if len(c.ParsedData) == 0 {
		t.Error("audit blob must be attached")
	}
}

func TestApplyContractNeverOverwrites(t *testing.T) {
	c := &entity.Contract{
		ContractNumber: sp("USER-0001"),
		Amount:         fp(42.00),
	}
	ApplyContract(c, contractResult())
	if *c.ContractNumber != "USER-0001" {
		t.Errorf("user-entered contract_number was overwritten: %q", *c.ContractNumber)
	}
	if *c.Amount != 42.00 {
		t.Errorf("user-entered amount was overwritten: %v", *c.Amount)
	}
	// Empty fields are still filled around the protected ones.
	if c.ContractName == nil || *c.ContractName != "采购合同" {
		t.Errorf("contract_name = %v", c.ContractName)
	}
	if len(c.ParsedData) == 0 {
		t.Error("audit blob must be attached even when fields are protected")
	}
}

func TestApplyContractIdempotent(t *testing.T) {
	c := &entity.Contract{}
	res := contractResult()
	ApplyContract(c, res)
	num, name, amt := *c.ContractNumber, *c.ContractName, *c.Amount

	if ApplyContract(c, res) {
		t.Error("second apply must not report changes")
	}
	if *c.ContractNumber != num || *c.ContractName != name || *c.Amount != amt {
		t.Error("second apply mutated the record")
	}
}

func TestApplyInvoice(t *testing.T) {
	r := parser.BuildInvoiceResult("发票号码：04731182\n价税合计：￥200.00\n销售方 名称：卖方公司")
	inv := &entity.Invoice{Seller: sp("用户录入卖方")}

	if !ApplyInvoice(inv, r) {
		t.Fatal("expected changes")
	}
	if *inv.InvoiceNumber != "04731182" {
		t.Errorf("invoice_number = %v", inv.InvoiceNumber)
	}
	if *inv.Amount != 200.00 {
		t.Errorf("amount = %v", inv.Amount)
	}
	if *inv.Seller != "用户录入卖方" {
		t.Errorf("seller was overwritten: %q", *inv.Seller)
	}
}

func TestApplyNilSafety(t *testing.T) {
	if ApplyContract(nil, contractResult()) {
		t.Error("nil contract must be a no-op")
	}
	if ApplyContract(&entity.Contract{}, nil) {
		t.Error("nil result must be a no-op")
	}
}
