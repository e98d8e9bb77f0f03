package memory

import (
	stderrors "errors"
	"testing"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/errors"
)

func expectPanicKind(t *testing.T, kind errors.Kind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic with %s", kind)
		}
		var e *errors.Error
		err, _ := r.(error)
		if !stderrors.As(err, &e) || e.Kind != kind {
			t.Fatalf("Expected %s panic, got %v", kind, r)
		}
		if !errors.IsContractViolation(err) {
			t.Fatalf("Expected %s to count as a contract violation", kind)
		}
	}()
	fn()
}

func TestHeap_AllocAlignment(t *testing.T) {
	h := NewHeap()

	for _, align := range []uintptr{1, 2, 4, 8, 16} {
		addr, err := h.Alloc(3, align)
		if err != nil {
			t.Fatalf("Alloc(3, %d) failed: %v", align, err)
		}
		if uintptr(addr)%align != 0 {
			t.Errorf("address %#x not aligned to %d", uintptr(addr), align)
		}
	}

	if _, err := h.Alloc(8, 3); err == nil {
		t.Fatal("Expected error for non power of two alignment")
	}
}

func TestHeap_ReadWrite(t *testing.T) {
	h := NewHeap()
	addr, _ := h.Alloc(32, 8)

	if err := h.WriteU8(addr, 0xab); err != nil {
		t.Fatal(err)
	}
	if err := h.WriteU16(addr+2, 0xbeef); err != nil {
		t.Fatal(err)
	}
	if err := h.WriteU32(addr+4, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	if err := h.WriteU64(addr+8, 0x0102030405060708); err != nil {
		t.Fatal(err)
	}
	if err := h.WriteAddr(addr+16, 0x10040); err != nil {
		t.Fatal(err)
	}

	if v, _ := h.ReadU8(addr); v != 0xab {
		t.Errorf("ReadU8 = %#x", v)
	}
	if v, _ := h.ReadU16(addr + 2); v != 0xbeef {
		t.Errorf("ReadU16 = %#x", v)
	}
	if v, _ := h.ReadU32(addr + 4); v != 0xdeadbeef {
		t.Errorf("ReadU32 = %#x", v)
	}
	if v, _ := h.ReadU64(addr + 8); v != 0x0102030405060708 {
		t.Errorf("ReadU64 = %#x", v)
	}
	if v, _ := h.ReadAddr(addr + 16); v != 0x10040 {
		t.Errorf("ReadAddr = %#x", uintptr(v))
	}

	data, err := h.Read(addr+8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if data[0] != 0x08 || data[7] != 0x01 {
		t.Errorf("Expected little-endian layout, got %x", data)
	}
}

func TestHeap_BoundsChecks(t *testing.T) {
	h := NewHeap()
	addr, _ := h.Alloc(4, 4)

	if _, err := h.Read(addr, 5); err == nil {
		t.Error("Expected out of bounds read to fail")
	}
	if err := h.Write(addr+2, []byte{1, 2, 3}); err == nil {
		t.Error("Expected out of bounds write to fail")
	}
	if _, err := h.Read(0, 1); err == nil {
		t.Error("Expected null read to fail")
	}
	if _, err := h.Read(accesskit.Addr(0x5), 1); err == nil {
		t.Error("Expected read below heap to fail")
	}
	if b, err := h.Read(0, 0); err != nil || len(b) != 0 {
		t.Error("Expected zero-length read to succeed without touching memory")
	}
}

func TestHeap_UseAfterFree(t *testing.T) {
	h := NewHeap()
	addr, _ := h.Alloc(8, 8)
	h.Free(addr, 8, 8)

	if _, err := h.ReadU64(addr); err == nil {
		t.Fatal("Expected read after free to fail")
	}
	if h.IsLive(addr) {
		t.Fatal("Expected freed block to be dead")
	}
}

func TestHeap_FreeViolations(t *testing.T) {
	h := NewHeap()
	addr, _ := h.Alloc(8, 8)
	other, _ := h.Alloc(0, 1)

	expectPanicKind(t, errors.KindLengthMismatch, func() { h.Free(addr, 4, 8) })
	expectPanicKind(t, errors.KindNilPointer, func() { h.Free(0, 8, 8) })
	expectPanicKind(t, errors.KindOutOfBounds, func() { h.Free(addr+1, 8, 8) })

	h.Free(addr, 8, 8)
	expectPanicKind(t, errors.KindDoubleFree, func() { h.Free(addr, 8, 8) })

	if addr == other {
		t.Fatal("Expected distinct addresses for distinct allocations")
	}
	h.Free(other, 0, 1)
	if h.Live() != 0 {
		t.Fatalf("Expected no live allocations, got %d", h.Live())
	}
	allocs, frees := h.Stats()
	if allocs != 2 || frees != 2 {
		t.Fatalf("Expected 2/2 allocs/frees, got %d/%d", allocs, frees)
	}
}

func TestHeap_Growth(t *testing.T) {
	h := NewHeap()
	var addrs []accesskit.Addr
	for i := 0; i < 100; i++ {
		addr, err := h.Alloc(128, 8)
		if err != nil {
			t.Fatal(err)
		}
		if err := h.WriteU64(addr, uint64(i)); err != nil {
			t.Fatal(err)
		}
		addrs = append(addrs, addr)
	}
	for i, addr := range addrs {
		v, err := h.ReadU64(addr)
		if err != nil || v != uint64(i) {
			t.Fatalf("block %d: got %d (%v)", i, v, err)
		}
	}
}
