package parser

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/internal/textextract"
)

func newTestParser(t *testing.T) (*Parser, string) {
	t.Helper()
	dir := t.TempDir()
	p := New(Config{UploadDir: dir}, textextract.NewExtractor(textextract.Config{}, nil), nil)
	return p, dir
}

func writeDOCX(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	for _, line := range strings.Split(body, "\n") {
		xml += `<w:p><w:r><w:t>` + line + `</w:t></w:r></w:p>`
	}
	xml += `</w:body></w:document>`
	if _, err := w.Write([]byte(xml)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestParseContractDOCX(t *testing.T) {
	p, dir := newTestParser(t)
	name := writeDOCX(t, dir, "contract.docx",
		"合同编号：HT-2024-0099\n甲方：北京某公司，\n乙方：上海另一公司。\n合同金额：¥1,234,567.89\n签约日期：2024年3月5日")

	res, err := p.ParseContract(context.Background(), name)
	if err != nil {
		t.Fatalf("ParseContract: %v", err)
	}
	if res.ParseStatus != constants.ParseStatusPartial {
		t.Errorf("status = %q, want partial", res.ParseStatus)
	}
	if res.ParseMessage == "" {
		t.Error("partial result must carry a review message")
	}
	if res.RawText == "" {
		t.Error("raw_text must be populated when acquisition succeeds")
	}
	if res.PartyA == nil || *res.PartyA != "北京某公司" {
		t.Errorf("party_a = %v", res.PartyA)
	}
	if res.Amount == nil || *res.Amount != 1234567.89 {
		t.Errorf("amount = %v", res.Amount)
	}
	if res.SignDate == nil || *res.SignDate != "2024-03-05T00:00:00" {
		t.Errorf("sign_date = %v", res.SignDate)
	}
	if len(res.StampPages) != 0 {
		t.Errorf("docx has no page structure; stamp_pages = %v", res.StampPages)
	}
}

func TestParseInvoiceDOCX(t *testing.T) {
	p, dir := newTestParser(t)
	name := writeDOCX(t, dir, "invoice.docx",
		"发票号码：04731182\n发票代码：1100231130\n价税合计：￥11,300.00\n开票日期：2024-11-02")

	res, err := p.ParseInvoice(context.Background(), name)
	if err != nil {
		t.Fatalf("ParseInvoice: %v", err)
	}
	if res.ParseStatus != constants.ParseStatusPartial {
		t.Errorf("status = %q, want partial", res.ParseStatus)
	}
	if res.InvoiceNumber == nil || *res.InvoiceNumber != "04731182" {
		t.Errorf("invoice_number = %v", res.InvoiceNumber)
	}
	if res.Amount == nil || *res.Amount != 11300.00 {
		t.Errorf("amount = %v", res.Amount)
	}
}

func TestParseRejectsLegacyDoc(t *testing.T) {
	p, dir := newTestParser(t)
	if err := os.WriteFile(filepath.Join(dir, "old.doc"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := p.ParseContract(context.Background(), "old.doc")
	if !errors.Is(err, ErrDocUnsupported) {
		t.Fatalf("err = %v, want ErrDocUnsupported", err)
	}
	if !IsUnsupported(err) {
		t.Error("IsUnsupported must report true for .doc")
	}
	var ute *UnsupportedTypeError
	if errors.As(err, &ute) {
		t.Error(".doc must get its own message, not the generic unsupported error")
	}
}

func TestParseRejectsUnknownExtension(t *testing.T) {
	p, dir := newTestParser(t)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := p.ParseInvoice(context.Background(), "notes.txt")
	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("err = %v, want UnsupportedTypeError", err)
	}
	if ute.Ext != "txt" {
		t.Errorf("ext = %q", ute.Ext)
	}
	if !IsUnsupported(err) {
		t.Error("IsUnsupported must report true")
	}
}

func TestParseMissingFile(t *testing.T) {
	p, _ := newTestParser(t)
	_, err := p.ParseContract(context.Background(), "ghost.pdf")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestParseCorruptFileDowngradesToFailed(t *testing.T) {
	p, dir := newTestParser(t)
	if err := os.WriteFile(filepath.Join(dir, "bad.docx"), []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := p.ParseContract(context.Background(), "bad.docx")
	if err != nil {
		t.Fatalf("acquisition failure must not escape as error, got %v", err)
	}
	if res.ParseStatus != constants.ParseStatusFailed {
		t.Errorf("status = %q, want failed", res.ParseStatus)
	}
	if !strings.HasPrefix(res.ParseMessage, "解析失败: ") {
		t.Errorf("message = %q", res.ParseMessage)
	}
	if res.RawText != "" {
		t.Errorf("failed acquisition must leave raw_text empty, got %q", res.RawText)
	}
}

func TestBuildContractResultLastLineField(t *testing.T) {
	// A labeled field on the final line with no closing punctuation must
	// still extract; its chain patterns require a trailing delimiter.
	text := "合同编号：HT-2024-0044\n乙方：上海某公司"
	res := BuildContractResult(text, nil)
	if res.PartyB == nil || *res.PartyB != "上海某公司" {
		t.Errorf("party_b = %v, want 上海某公司", res.PartyB)
	}
	if res.RawText != text {
		t.Errorf("raw_text = %q, want input unchanged", res.RawText)
	}
}

func TestBuildContractResultTrimsRawTextOnly(t *testing.T) {
	res := BuildContractResult("甲方：北京某公司\n\n", nil)
	if res.PartyA == nil || *res.PartyA != "北京某公司" {
		t.Errorf("party_a = %v, want 北京某公司", res.PartyA)
	}
	if res.RawText != "甲方：北京某公司" {
		t.Errorf("raw_text = %q, want trailing whitespace trimmed", res.RawText)
	}
}

func TestContractResultMatchesSchema(t *testing.T) {
	res := BuildContractResult("甲方：北京某公司，\n合同金额：100.00元", []string{"双方盖章"})
	blob, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateJSONAgainstSchema(BuildContractResultSchema(), blob); err != nil {
		t.Errorf("contract result blob rejected: %v", err)
	}
}

func TestInvoiceResultMatchesSchema(t *testing.T) {
	res := BuildInvoiceResult("发票号码：12345678")
	blob, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateJSONAgainstSchema(BuildInvoiceResultSchema(), blob); err != nil {
		t.Errorf("invoice result blob rejected: %v", err)
	}
}

func TestSchemaRejectsUnknownKeys(t *testing.T) {
	blob := []byte(`{"raw_text":"","parse_status":"partial","parse_message":"m","stamp_pages":[],"bogus":1}`)
	if err := ValidateJSONAgainstSchema(BuildContractResultSchema(), blob); err == nil {
		t.Error("unknown key must be rejected")
	}
}
