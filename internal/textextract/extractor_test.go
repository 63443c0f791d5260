package textextract

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func TestExtractPDFSplitsPages(t *testing.T) {
	stub := &stubRunner{stdout: []byte("第一页内容\f\f第三页 盖章\f")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.ExtractPDF(context.Background(), "a.pdf")
	if err != nil {
		t.Fatalf("ExtractPDF: %v", err)
	}
	if stub.gotName != "pdftotext" {
		t.Errorf("expected pdftotext invocation, got %q", stub.gotName)
	}
	if len(res.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d (%q)", len(res.Pages), res.Pages)
	}
	if res.Pages[1] != "" {
		t.Errorf("empty page must stay aligned as \"\", got %q", res.Pages[1])
	}
	if res.Pages[2] != "第三页 盖章" {
		t.Errorf("unexpected page 2 text: %q", res.Pages[2])
	}
	if res.Text != "第一页内容\n\n\n\n第三页 盖章" {
		t.Errorf("unexpected joined text: %q", res.Text)
	}
}

func TestExtractPDFError(t *testing.T) {
	stub := &stubRunner{stderr: []byte("Syntax Error: damaged xref"), err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.ExtractPDF(context.Background(), "broken.pdf")
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
	if len(res.Warnings) == 0 {
		t.Error("expected stderr captured as warning")
	}
}

func TestExtractImageUsesConfiguredLanguage(t *testing.T) {
	stub := &stubRunner{stdout: []byte("发票号码: 12345678\n")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.ExtractImage(context.Background(), "scan.png")
	if err != nil {
		t.Fatalf("ExtractImage: %v", err)
	}
	if res.Language != "chi_sim+eng" {
		t.Errorf("default language = %q, want chi_sim+eng", res.Language)
	}
	found := false
	for _, a := range stub.gotArgs {
		if a == "chi_sim+eng" {
			found = true
		}
	}
	if !found {
		t.Errorf("tesseract args missing language: %v", stub.gotArgs)
	}
	if len(res.Pages) != 0 {
		t.Errorf("image extraction must not report page structure, got %d pages", len(res.Pages))
	}
}

func writeTestDOCX(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contract.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestExtractDOCX(t *testing.T) {
	const docXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>合同编号：HT-2024-001</w:t></w:r></w:p>
    <w:p><w:r><w:t>甲方：</w:t></w:r><w:r><w:t>北京某公司</w:t></w:r></w:p>
  </w:body>
</w:document>`
	e := NewExtractor(Config{}, nil)
	res, err := e.ExtractDOCX(context.Background(), writeTestDOCX(t, docXML))
	if err != nil {
		t.Fatalf("ExtractDOCX: %v", err)
	}
	want := "合同编号：HT-2024-001\n甲方：北京某公司\n"
	if res.Text != want {
		t.Errorf("text = %q, want %q", res.Text, want)
	}
	if len(res.Pages) != 0 {
		t.Errorf("docx must not report page structure")
	}
}

func TestExtractDOCXCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.docx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := NewExtractor(Config{}, nil)
	if _, err := e.ExtractDOCX(context.Background(), path); err == nil {
		t.Fatal("expected error for corrupt docx")
	}
}

func TestNormalize(t *testing.T) {
	in := "金额：  100.00\t\r\n\r\n\r\n\r\n尾行   \n"
	got := Normalize(in)
	want := "金额： 100.00\n\n尾行"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}
