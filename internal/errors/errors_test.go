package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(DocumentNotFound, "document d1 is not in the snapshot")
	want := "[DOCUMENT_NOT_FOUND] document d1 is not in the snapshot"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(StoreUnavailable, "failed to open document store", stderrors.New("disk full"))
	want = "[STORE_UNAVAILABLE] failed to open document store: disk full"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(InternalError, "something broke", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"direct", New(MalformedRecord, "x"), MalformedRecord},
		{"wrapped in fmt", fmt.Errorf("context: %w", New(DocumentNotFound, "x")), DocumentNotFound},
		{"plain error", stderrors.New("x"), InternalError},
		{"nil-adjacent plain chain", fmt.Errorf("no wire error here"), InternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(DocumentNotFound, "gone"))

	if !HasCode(err, DocumentNotFound) {
		t.Error("HasCode(DocumentNotFound) = false")
	}
	if HasCode(err, MalformedRecord) {
		t.Error("HasCode(MalformedRecord) = true")
	}
	if HasCode(stderrors.New("plain"), DocumentNotFound) {
		t.Error("HasCode on plain error = true")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(MalformedRecord, "bad record").WithDetails(map[string]int{"index": 3})
	details, ok := err.Details.(map[string]int)
	if !ok || details["index"] != 3 {
		t.Errorf("Details = %v", err.Details)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(DocumentNotFound, "document %s is not in the snapshot", "d42")
	if err.Message != "document d42 is not in the snapshot" {
		t.Errorf("Message = %q", err.Message)
	}
}
