package html

import "testing"

func TestEscapeOnlyMarkupCharacters(t *testing.T) {
	got := Escape(`a & b <c> "d" 'e'`)
	want := `a &amp; b &lt;c&gt; "d" 'e'`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEscapeIsNotIdempotentOnEntities(t *testing.T) {
	if got := Escape("&amp;"); got != "&amp;amp;" {
		t.Fatalf("expected literal ampersand escaped, got %q", got)
	}
}

func TestSelectedButtonText(t *testing.T) {
	if got := SelectedButtonText("x", true); got != "• x •" {
		t.Fatalf("expected bullets, got %q", got)
	}
	if got := SelectedButtonText("x", false); got != "x" {
		t.Fatalf("expected plain label, got %q", got)
	}
}

func TestEmphasisTokens(t *testing.T) {
	if got := Underline("a") + Italic("b"); got != "<u>a</u><i>b</i>" {
		t.Fatalf("unexpected tokens %q", got)
	}
}
