package tokenizer

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// assertTokens drains next and compares the result with expected.
func assertTokens(t *testing.T, next func() (*tokenizer.Token, bool), expected []wantToken) {
	t.Helper()

	for i, exp := range expected {
		token, ok := next()
		if !ok {
			t.Fatalf("token %d: expected token, got none (expected %s: %q)", i, exp.kind, exp.value)
		}
		if token.Kind() != exp.kind {
			t.Errorf("token %d: expected kind %s, got %s (value: %q)", i, exp.kind, token.Kind(), token.ValueString())
		}
		if token.ValueString() != exp.value {
			t.Errorf("token %d: expected value %q, got %q (kind: %s)", i, exp.value, token.ValueString(), token.Kind())
		}
	}

	if token, ok := next(); ok {
		t.Errorf("expected no more tokens, got %s: %q", token.Kind(), token.ValueString())
	}
}
