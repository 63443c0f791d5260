package ingest

import "testing"

func TestAllowedExt(t *testing.T) {
	for _, ext := range []string{"pdf", "DOCX", ".jpg", "jpeg", "png"} {
		if !AllowedExt(ext) {
			t.Errorf("AllowedExt(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{"doc", "txt", "", "exe"} {
		if AllowedExt(ext) {
			t.Errorf("AllowedExt(%q) = true, want false", ext)
		}
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/data/.cache") {
		t.Error("dotted base must be hidden")
	}
	if IsHidden("/data/contracts/a.pdf") {
		t.Error("regular file must not be hidden")
	}
}
