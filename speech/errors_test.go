package speech

import (
	"errors"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrorOther, "other"},
		{ErrorNetwork, "network"},
		{ErrorPermission, "permission-denied"},
		{ErrorLanguage, "unsupported-language"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEngineErrorUserMessages(t *testing.T) {
	kinds := []ErrorKind{ErrorOther, ErrorNetwork, ErrorPermission, ErrorLanguage}

	seen := map[string]ErrorKind{}
	for _, k := range kinds {
		msg := EngineError{Kind: k}.UserMessage()
		if msg == "" {
			t.Errorf("kind %v has an empty user message", k)
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("kinds %v and %v share the message %q", prev, k, msg)
		}
		seen[msg] = k
	}
}

func TestEngineErrorAs(t *testing.T) {
	var err error = EngineError{Kind: ErrorNetwork}
	var ee EngineError
	if !errors.As(err, &ee) {
		t.Fatal("errors.As failed for EngineError")
	}
	if ee.Kind != ErrorNetwork {
		t.Errorf("Kind = %v, want ErrorNetwork", ee.Kind)
	}
}
