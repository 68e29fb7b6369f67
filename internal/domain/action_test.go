package domain

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	for _, action := range Actions() {
		parsed, err := ParseAction(string(action))
		if err != nil {
			t.Errorf("Expected no error for %q, got %v", action, err)
		}
		if parsed != action {
			t.Errorf("Expected %q, got %q", action, parsed)
		}
	}
}

func TestParseActionUnknown(t *testing.T) {
	for _, raw := range []string{"", "expand", "CONTINUE", "translate"} {
		_, err := ParseAction(raw)
		if !errors.Is(err, ErrUnknownAction) {
			t.Errorf("Expected ErrUnknownAction for %q, got %v", raw, err)
		}
	}
}
