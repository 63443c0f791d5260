package constants

import "testing"

func TestNormalizeExt(t *testing.T) {
	cases := map[string]string{
		".PDF":  "pdf",
		"pdf":   "pdf",
		".JpEg": "jpeg",
		"":      "",
	}
	for in, want := range cases {
		if got := NormalizeExt(in); got != want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapExtToFormat(t *testing.T) {
	cases := map[string]string{
		"pdf":  PDF,
		".pdf": PDF,
		"docx": DOCX,
		"jpg":  IMAGE,
		"jpeg": IMAGE,
		"png":  IMAGE,
		"doc":  "",
		"txt":  "",
	}
	for in, want := range cases {
		if got := MapExtToFormat(in); got != want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", in, got, want)
		}
	}
}
