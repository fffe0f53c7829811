package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad payload")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad payload" {
		t.Errorf("expected message 'bad payload', got %q", err.Message)
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("payload", "must be a map, JSON string, or typed payload")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["argument"] != "payload" {
		t.Errorf("expected argument=payload, got %v", err.Details["argument"])
	}
	if !strings.Contains(err.Message, "must be a map") {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestAppError_MissingArgument_Success(t *testing.T) {
	err := MissingArgument("payload", "json")
	if err.Code != ErrCodeMissingArgument {
		t.Errorf("expected MISSING_ARGUMENT, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "payload, json") {
		t.Errorf("expected argument names in message, got %q", err.Message)
	}
}

func TestAppError_UnsupportedType_Success(t *testing.T) {
	err := UnsupportedType("payload", 42)
	if err.Code != ErrCodeUnsupportedType {
		t.Errorf("expected UNSUPPORTED_TYPE, got %s", err.Code)
	}
	if err.Details["type"] != "int" {
		t.Errorf("expected type=int, got %v", err.Details["type"])
	}
}

func TestAppError_MissingField_Success(t *testing.T) {
	err := MissingField("data")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", err.Code)
	}
	if err.Details["field"] != "data" {
		t.Errorf("expected field=data, got %v", err.Details["field"])
	}
}

func TestAppError_Error_WithCause(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := InvalidPayload("payload is not valid JSON").WithCause(cause)
	if !strings.Contains(err.Error(), "unexpected end of JSON input") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
}

func TestAppError_WithDetail_Success(t *testing.T) {
	err := InvalidPayload("validation failed").WithDetail("field", "name")
	if err.Details["field"] != "name" {
		t.Errorf("expected field=name, got %v", err.Details["field"])
	}
}

func TestAsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("fill pdf: %w", MissingField("data"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed on wrapped error")
	}
	if appErr.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", appErr.Code)
	}
}

func TestAsAppError_NotAppError(t *testing.T) {
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to fail on a plain error")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError=false on a plain error")
	}
}

func TestHasCode_Success(t *testing.T) {
	err := MissingArgument("payload", "json")
	if !HasCode(err, ErrCodeMissingArgument) {
		t.Error("expected HasCode to match")
	}
	if HasCode(err, ErrCodeInvalidPayload) {
		t.Error("expected HasCode to reject a different code")
	}
}
