package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	for text, want := range keywords {
		got, ok := LookupKeyword(text)
		if !ok || got != want {
			t.Errorf("%q: got (%v,%v), want %v", text, got, ok, want)
		}
		if got.String() != text {
			t.Errorf("%q: String() = %q", text, got.String())
		}
	}
	if _, ok := LookupKeyword("Let"); ok {
		t.Errorf("keywords must be case-sensitive")
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: KwTrue}).IsLiteral() || !(Token{Kind: NumberLit}).IsLiteral() {
		t.Errorf("expected literal kinds to report IsLiteral")
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Errorf("identifier is not a literal")
	}
	if !(Token{Kind: KwSwitch}).IsKeyword() || (Token{Kind: Arrow}).IsKeyword() {
		t.Errorf("IsKeyword misclassified")
	}
	if Kind(200).String() != "Unknown" {
		t.Errorf("unexpected name for out-of-range kind")
	}
}
