package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindLengthMismatch,
				Path:   []string{"node", "children"},
				GoType: "[]tree.NodeID",
				CType:  "accesskit_node_ids",
				Detail: "length too large",
			},
			contains: []string{"[decode]", "length_mismatch", "node.children", "[]tree.NodeID", "accesskit_node_ids", "length too large"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseHandle,
				Kind:  KindStaleHandle,
			},
			contains: []string{"[handle]", "stale_handle"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCapture,
				Kind:   KindIO,
				Detail: "write record",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[capture]", "io", "write record", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseCapture,
		Kind:  KindIO,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseHandle,
		Kind:  KindDoubleFree,
		Path:  []string{"node"},
	}

	if !err.Is(&Error{Phase: PhaseHandle, Kind: KindDoubleFree}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseRelease, Kind: KindDoubleFree}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseHandle, Kind: KindStaleHandle}) {
		t.Error("Is should not match different kind")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, &Error{Phase: PhaseHandle, Kind: KindDoubleFree}) {
		t.Error("errors.Is should match through wrapping")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindEmbeddedNul).
		Path("node", "label").
		GoType("string").
		CType("char *").
		Value(3).
		Cause(cause).
		Detail("NUL at offset %d", 3).
		Build()

	if err.Phase != PhaseEncode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseEncode)
	}
	if err.Kind != KindEmbeddedNul {
		t.Errorf("Kind = %v, want %v", err.Kind, KindEmbeddedNul)
	}
	if len(err.Path) != 2 || err.Path[0] != "node" || err.Path[1] != "label" {
		t.Errorf("Path = %v, want [node label]", err.Path)
	}
	if err.GoType != "string" || err.CType != "char *" {
		t.Errorf("GoType=%v CType=%v", err.GoType, err.CType)
	}
	if err.Value != 3 {
		t.Errorf("Value = %v, want 3", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "NUL at offset 3" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestContractViolationClass(t *testing.T) {
	tests := []struct {
		kind     Kind
		contract bool
	}{
		{KindNilHandle, true},
		{KindStaleHandle, true},
		{KindDoubleFree, true},
		{KindEmbeddedNul, true},
		{KindMissingCallback, true},
		{KindNullUpdate, true},
		{KindIO, false},
		{KindSerialize, false},
		{KindPoisoned, false},
		{KindAllocation, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := New(PhaseHandle, tt.kind).Build()
			if got := err.IsContractViolation(); got != tt.contract {
				t.Errorf("IsContractViolation() = %v, want %v", got, tt.contract)
			}
			if got := IsContractViolation(fmt.Errorf("wrapped: %w", err)); got != tt.contract {
				t.Errorf("IsContractViolation(wrapped) = %v, want %v", got, tt.contract)
			}
		})
	}

	if IsContractViolation(nil) {
		t.Error("nil error is not a contract violation")
	}
	if IsContractViolation(errors.New("plain")) {
		t.Error("plain error is not a contract violation")
	}
}

func TestViolationPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic")
		}
		err, ok := r.(*Error)
		if !ok {
			t.Fatalf("Expected *Error panic value, got %T", r)
		}
		if err.Kind != KindMissingCallback {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMissingCallback)
		}
		if err.Detail != "activation handler 7" {
			t.Errorf("Detail = %q", err.Detail)
		}
	}()
	Violation(PhaseCallback, KindMissingCallback, "activation handler %d", 7)
}

func TestMust(t *testing.T) {
	Must(nil)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for non-nil error")
		}
	}()
	Must(errors.New("boom"))
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed(PhaseEncode, 1024, 8)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("InvalidDiscriminant", func(t *testing.T) {
		err := InvalidDiscriminant(PhaseDecode, []string{"action_data"}, 9, 7)
		if err.Kind != KindInvalidDiscriminant {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidDiscriminant)
		}
		if err.Value != uint32(9) {
			t.Errorf("Value = %v, want 9", err.Value)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseDecode, 0x1000, 16)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !strings.Contains(err.Detail, "0x1000") {
			t.Errorf("Detail = %q, should contain address", err.Detail)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		err := NilPointer(PhaseRelease, []string{"string"}, "char *")
		if err.Kind != KindNilPointer || err.CType != "char *" {
			t.Errorf("Kind=%v CType=%v", err.Kind, err.CType)
		}
	})

	t.Run("EmbeddedNul", func(t *testing.T) {
		err := EmbeddedNul(PhaseEncode, 2)
		if err.Kind != KindEmbeddedNul || err.Value != 2 {
			t.Errorf("Kind=%v Value=%v", err.Kind, err.Value)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseParse, "record", "7")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
	})
}
