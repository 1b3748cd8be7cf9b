package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("start_idx must not exceed end_idx")

	if err.Error() != "start_idx must not exceed end_idx" {
		t.Errorf("expected 'start_idx must not exceed end_idx', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("negative index")
	err := apperr.NewValidationWrap("invalid span", inner)

	if err.Error() != "invalid span: negative index" {
		t.Errorf("expected 'invalid span: negative index', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("malformed span")

	wrapped := fmt.Errorf("similarity: %w", original)
	doubleWrapped := fmt.Errorf("match: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "malformed span" {
		t.Errorf("expected 'malformed span', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("solver exploded")
	wrapped := fmt.Errorf("match: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestInternalError(t *testing.T) {
	sentinel := errors.New("matrix is not square")
	err := apperr.NewInternal("assign", sentinel)

	if err.Error() != "internal error in assign: matrix is not square" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(fmt.Errorf("match: %w", err), sentinel) {
		t.Error("expected sentinel to be reachable through wrapping")
	}

	var ie *apperr.InternalError
	if !errors.As(fmt.Errorf("score: %w", err), &ie) {
		t.Fatal("errors.As should find InternalError")
	}
	if ie.Op != "assign" {
		t.Errorf("expected op 'assign', got %q", ie.Op)
	}
}
