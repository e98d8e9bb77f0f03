package memory

import (
	"testing"
	"unsafe"
)

// goBacked hands out Go memory kept reachable by the map, standing in for
// malloc in tests.
type goBacked struct {
	blocks map[uintptr][]byte
}

func (g *goBacked) malloc(size uintptr) unsafe.Pointer {
	buf := make([]byte, size+16)
	p := unsafe.Pointer(&buf[0])
	g.blocks[uintptr(p)] = buf
	return p
}

func (g *goBacked) free(p unsafe.Pointer) {
	delete(g.blocks, uintptr(p))
}

func TestNative_RoundTrip(t *testing.T) {
	g := &goBacked{blocks: make(map[uintptr][]byte)}
	n := NewNative(g.malloc, g.free)

	addr, err := n.Alloc(16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if n.Live() != 1 {
		t.Fatalf("Expected 1 live allocation, got %d", n.Live())
	}

	if err := n.WriteU32(addr, 42); err != nil {
		t.Fatal(err)
	}
	if err := n.WriteU64(addr+8, 7); err != nil {
		t.Fatal(err)
	}
	if v, _ := n.ReadU32(addr); v != 42 {
		t.Errorf("ReadU32 = %d", v)
	}
	if v, _ := n.ReadU64(addr + 8); v != 7 {
		t.Errorf("ReadU64 = %d", v)
	}

	if err := n.Write(addr, []byte("hi")); err != nil {
		t.Fatal(err)
	}
	b, _ := n.Read(addr, 2)
	if string(b) != "hi" {
		t.Errorf("Read = %q", b)
	}

	n.Free(addr, 16, 8)
	if n.Live() != 0 || len(g.blocks) != 0 {
		t.Fatal("Expected allocation to be returned")
	}
}

func TestNative_Errors(t *testing.T) {
	g := &goBacked{blocks: make(map[uintptr][]byte)}
	n := NewNative(g.malloc, g.free)

	if _, err := n.ReadU8(0); err == nil {
		t.Error("Expected null read to fail")
	}
	if _, err := n.Alloc(8, 64); err == nil {
		t.Error("Expected over-aligned allocation to fail")
	}

	failing := NewNative(func(uintptr) unsafe.Pointer { return nil }, g.free)
	if _, err := failing.Alloc(8, 8); err == nil {
		t.Error("Expected malloc failure to surface")
	}
}
