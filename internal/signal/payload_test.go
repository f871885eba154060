package signal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func payloadKind(t *testing.T, err error) PayloadErrorKind {
	t.Helper()
	var perr *PayloadError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PayloadError", err)
	}
	return perr.Kind
}

func TestValidatePayloadSizeBoundary(t *testing.T) {
	// A single string field costs len + 10 overhead, so a 9990-byte string
	// lands exactly on the 10000-byte limit.
	exact := map[string]any{"blob": strings.Repeat("x", MaxPayloadSize-stringOverheadBytes)}
	if err := ValidatePayload(exact); err != nil {
		t.Errorf("ValidatePayload(size == %d) error = %v, want ok", MaxPayloadSize, err)
	}

	over := map[string]any{"blob": strings.Repeat("x", MaxPayloadSize-stringOverheadBytes+1)}
	err := ValidatePayload(over)
	if err == nil {
		t.Fatalf("ValidatePayload(size == %d) expected error", MaxPayloadSize+1)
	}
	if kind := payloadKind(t, err); kind != PayloadTooLarge {
		t.Errorf("kind = %v, want %v", kind, PayloadTooLarge)
	}
}

func TestValidatePayloadStringBoundary(t *testing.T) {
	if err := ValidatePayload(map[string]any{"s": strings.Repeat("a", MaxStringLength)}); err != nil {
		t.Errorf("ValidatePayload(1000-char string) error = %v, want ok", err)
	}

	err := ValidatePayload(map[string]any{"s": strings.Repeat("a", MaxStringLength+1)})
	if err == nil {
		t.Fatal("ValidatePayload(1001-char string) expected error")
	}
	if kind := payloadKind(t, err); kind != PayloadStringTooLong {
		t.Errorf("kind = %v, want %v", kind, PayloadStringTooLong)
	}
}

func TestValidatePayloadDepth(t *testing.T) {
	nest := func(depth int) map[string]any {
		m := map[string]any{"leaf": 1}
		for i := 1; i < depth; i++ {
			m = map[string]any{"nested": m}
		}
		return m
	}

	if err := ValidatePayload(nest(MaxPayloadDepth)); err != nil {
		t.Errorf("ValidatePayload(depth %d) error = %v, want ok", MaxPayloadDepth, err)
	}

	err := ValidatePayload(nest(MaxPayloadDepth + 1))
	if err == nil {
		t.Fatal("ValidatePayload(depth 11) expected error")
	}
	if kind := payloadKind(t, err); kind != PayloadTooDeep {
		t.Errorf("kind = %v, want %v", kind, PayloadTooDeep)
	}
}

func TestValidatePayloadSizeWinsOverStringLength(t *testing.T) {
	// One string violates both the total-size and string-length limits;
	// the size check runs first so TooLarge must win.
	err := ValidatePayload(map[string]any{"s": strings.Repeat("a", MaxPayloadSize+100)})
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := payloadKind(t, err); kind != PayloadTooLarge {
		t.Errorf("kind = %v, want size violation to win over string length", kind)
	}
}

func TestValidatePayloadScalarCosts(t *testing.T) {
	// 500 scalars at 20 bytes each: exactly at the limit.
	exact := make(map[string]any, MaxPayloadSize/scalarCostBytes)
	for i := 0; i < MaxPayloadSize/scalarCostBytes; i++ {
		exact[fmt.Sprintf("k%03d", i)] = i
	}
	if err := ValidatePayload(exact); err != nil {
		t.Errorf("ValidatePayload(500 scalars) error = %v, want ok", err)
	}

	exact["one_more"] = true
	err := ValidatePayload(exact)
	if err == nil {
		t.Fatal("ValidatePayload(501 scalars) expected error")
	}
	if kind := payloadKind(t, err); kind != PayloadTooLarge {
		t.Errorf("kind = %v, want %v", kind, PayloadTooLarge)
	}
}

func TestValidatePayloadInvalidShape(t *testing.T) {
	err := ValidatePayload(map[string]any{"fn": func() {}})
	if err == nil {
		t.Fatal("ValidatePayload(func value) expected error")
	}
	if kind := payloadKind(t, err); kind != PayloadInvalidShape {
		t.Errorf("kind = %v, want %v", kind, PayloadInvalidShape)
	}
}

func TestValidatePayloadNil(t *testing.T) {
	if err := ValidatePayload(nil); err != nil {
		t.Errorf("ValidatePayload(nil) error = %v, want ok", err)
	}
}
