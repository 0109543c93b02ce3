package scope

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestIsStale(t *testing.T) {
	if !IsStale(ErrStale) {
		t.Error("expected the sentinel itself to classify as stale")
	}
	wrapped := fmt.Errorf("locating element: %w", ErrStale)
	if !IsStale(wrapped) {
		t.Error("expected a wrapped staleness error to classify as stale")
	}
	if IsStale(errors.New("boom")) {
		t.Error("expected an unrelated error not to classify as stale")
	}
	if IsStale(nil) {
		t.Error("expected nil not to classify as stale")
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Path: "LoginPage > LoginForm > Submit"}
	if !strings.Contains(err.Error(), "LoginPage > LoginForm > Submit") {
		t.Errorf("expected the full component path in %q", err.Error())
	}
}

func TestTimeoutErrorMessage(t *testing.T) {
	err := &TimeoutError{
		Path:      "LoginPage > Submit",
		Condition: "visible",
		Elapsed:   2 * time.Second,
	}
	msg := err.Error()
	for _, want := range []string{"LoginPage > Submit", "visible", "2s"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}
