package escape

import (
	"strings"
	"testing"
)

func TestDefaultEscapesMarkupCharacters(t *testing.T) {
	got := Default.Attr(`<a href="x">O'Brien & co</a>`)
	for _, raw := range []string{"<", ">", `"`, "'"} {
		if strings.Contains(got, raw) {
			t.Fatalf("expected %q to be escaped, got %q", raw, got)
		}
	}
	if !strings.Contains(got, "&amp; co") {
		t.Fatalf("expected ampersand entity, got %q", got)
	}
	if Default.HTML("O'Brien") != "O&#39;Brien" {
		t.Fatalf("unexpected text escape: %q", Default.HTML("O'Brien"))
	}
}

func TestSanitizingAllowsInlineMarkup(t *testing.T) {
	s := NewSanitizing(nil)
	got := s.HTML(`Accept <strong>terms</strong><script>alert(1)</script>`)
	if !strings.Contains(got, "<strong>terms</strong>") {
		t.Fatalf("expected strong element to survive, got %q", got)
	}
	if strings.Contains(got, "script") {
		t.Fatalf("expected script to be removed, got %q", got)
	}
}

func TestSanitizingAttrStaysStrict(t *testing.T) {
	s := NewSanitizing(nil)
	if got := s.Attr(`<b>`); got != "&lt;b&gt;" {
		t.Fatalf("expected attribute escaping, got %q", got)
	}
}
