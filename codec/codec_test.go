package codec

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/memory"
)

func errKind(err error) errors.Kind {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		v, align, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 4, 12},
		{3, 1, 3},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := AlignTo(tt.v, tt.align); got != tt.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.v, tt.align, got, tt.want)
		}
	}
}

func TestStruct(t *testing.T) {
	// struct { bool; double; } and struct { uint8_t; uint64_t; { bool; int32_t } }
	offsets, size, align := Struct(Field(Bool), Field(F64))
	if !reflect.DeepEqual(offsets, []uintptr{0, 8}) || size != 16 || align != 8 {
		t.Errorf("bool+double: offsets=%v size=%d align=%d", offsets, size, align)
	}

	offsets, size, align = Struct(Field(U8), Field(U64), Field(OptLayout(I32)))
	if !reflect.DeepEqual(offsets, []uintptr{0, 8, 16}) || size != 24 || align != 8 {
		t.Errorf("mixed: offsets=%v size=%d align=%d", offsets, size, align)
	}

	offsets, size, align = Struct(Field(U8), Field(U8))
	if !reflect.DeepEqual(offsets, []uintptr{0, 1}) || size != 2 || align != 1 {
		t.Errorf("bytes: offsets=%v size=%d align=%d", offsets, size, align)
	}
}

func TestOpt(t *testing.T) {
	some := Some(3.5)
	if v, ok := some.Get(); !ok || v != 3.5 {
		t.Errorf("Some.Get() = %v, %v", v, ok)
	}
	none := None[float64]()
	if v, ok := none.Get(); ok || v != 0 {
		t.Errorf("None.Get() = %v, %v", v, ok)
	}
	if none.OrElse(1) != 1 || some.OrElse(1) != 3.5 {
		t.Error("OrElse mismatch")
	}
	if none.Ptr() != nil || *some.Ptr() != 3.5 {
		t.Error("Ptr mismatch")
	}

	x := 7
	if o := OptFrom(&x); !o.HasValue || o.Value != 7 {
		t.Errorf("OptFrom = %+v", o)
	}
	if o := OptFrom[int](nil); o.HasValue {
		t.Errorf("OptFrom(nil) = %+v", o)
	}
	if o := OptOf("a", false); o.HasValue || o.Value != "" {
		t.Errorf("OptOf(false) must carry the zero value, got %+v", o)
	}
}

func TestNullable(t *testing.T) {
	if Nullable(None[Addr]()) != 0 {
		t.Error("absent must encode as null")
	}
	if Nullable(Some(Addr(0x40))) != 0x40 {
		t.Error("present must encode as the address")
	}
	if FromNullable(Addr(0)).HasValue {
		t.Error("null must decode as absent")
	}
	if o := FromNullable(Addr(0x40)); !o.HasValue || o.Value != 0x40 {
		t.Errorf("FromNullable = %+v", o)
	}
}

func TestOptLayout_RoundTrip(t *testing.T) {
	heap := memory.NewHeap()

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"double", func(t *testing.T) { roundTripOpt(t, heap, F64, 2.25) }},
		{"usize", func(t *testing.T) { roundTripOpt(t, heap, Usize, uint(12)) }},
		{"color", func(t *testing.T) { roundTripOpt(t, heap, U32, uint32(0xff00ff00)) }},
		{"bool", func(t *testing.T) { roundTripOpt(t, heap, Bool, true) }},
		{"u8", func(t *testing.T) { roundTripOpt(t, heap, U8, uint8(3)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
	if heap.Live() != 0 {
		t.Fatalf("leaked %d allocations", heap.Live())
	}
}

func roundTripOpt[T comparable](t *testing.T, heap *memory.Heap, inner Layout[T], v T) {
	t.Helper()
	l := OptLayout(inner)
	addr, err := heap.Alloc(l.Size, l.Align)
	if err != nil {
		t.Fatal(err)
	}
	defer heap.Free(addr, l.Size, l.Align)

	if err := l.Store(heap, addr, Some(v)); err != nil {
		t.Fatal(err)
	}
	got, err := l.Load(heap, addr)
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasValue || got.Value != v {
		t.Fatalf("Some round trip: got %+v, want %v", got, v)
	}

	if err := l.Store(heap, addr, None[T]()); err != nil {
		t.Fatal(err)
	}
	got, err = l.Load(heap, addr)
	if err != nil {
		t.Fatal(err)
	}
	var zero T
	if got.HasValue || got.Value != zero {
		t.Fatalf("None round trip: got %+v", got)
	}
	raw, _ := heap.Read(addr, l.Size)
	for i, b := range raw {
		if b != 0 {
			t.Fatalf("absent record byte %d = %#x, want zeroed record", i, b)
		}
	}
}

func TestCopySlice(t *testing.T) {
	heap := memory.NewHeap()
	values := []uint64{5, 1, 9, 1, 3}

	buf, _ := heap.Alloc(uintptr(len(values))*8, 8)
	for i, v := range values {
		_ = heap.WriteU64(buf+Addr(i*8), v)
	}

	got, err := CopySlice(heap, SliceView{Length: uintptr(len(values)), Values: buf}, U64)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, values) {
		t.Fatalf("CopySlice = %v, want %v", got, values)
	}

	// the copy must not alias caller memory
	_ = heap.WriteU64(buf, 100)
	if got[0] != 5 {
		t.Fatal("CopySlice result aliases the input buffer")
	}
	heap.Free(buf, uintptr(len(values))*8, 8)

	empty, err := CopySlice(heap, SliceView{}, U64)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty view: %v, %v", empty, err)
	}

	_, err = CopySlice(heap, SliceView{Length: 2}, U64)
	if errKind(err) != errors.KindLengthMismatch || !errors.IsContractViolation(err) {
		t.Fatalf("Expected length mismatch error, got %v", err)
	}
}

func TestArray_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []uint64
	}{
		{"empty", []uint64{}},
		{"single", []uint64{42}},
		{"many", []uint64{3, 1, 4, 1, 5, 9, 2, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heap := memory.NewHeap()
			header, err := EncodeArray(heap, heap, tt.values, U64)
			if err != nil {
				t.Fatal(err)
			}

			n, _ := heap.ReadU64(header)
			if n != uint64(len(tt.values)) {
				t.Fatalf("length = %d, want %d", n, len(tt.values))
			}

			got, err := ReadArray(heap, header, U64)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.values) {
				t.Fatalf("ReadArray = %v, want %v", got, tt.values)
			}

			if err := FreeArray(heap, heap, header, U64.Size, U64.Align, nil); err != nil {
				t.Fatal(err)
			}
			if heap.Live() != 0 {
				t.Fatalf("leaked %d allocations", heap.Live())
			}
		})
	}
}

func TestArray_FreeElements(t *testing.T) {
	heap := memory.NewHeap()
	labels := []string{"a", "bb", "ccc"}

	header, err := EncodeArrayWith(heap, heap, labels, Pointer.Size, Pointer.Align,
		func(al *AllocationList, addr Addr, s string) error {
			p, err := EncodeCString(heap, heap, s)
			if err != nil {
				return err
			}
			al.Add(p, uintptr(len(s))+1, 1)
			return heap.WriteAddr(addr, p)
		})
	if err != nil {
		t.Fatal(err)
	}
	if heap.Live() != 5 {
		t.Fatalf("Expected header, buffer and 3 strings, got %d", heap.Live())
	}

	var seen []string
	err = FreeArray(heap, heap, header, Pointer.Size, Pointer.Align, func(addr Addr) error {
		p, err := heap.ReadAddr(addr)
		if err != nil {
			return err
		}
		s, _ := DecodeCString(heap, p)
		seen = append(seen, s)
		return FreeCString(heap, heap, p)
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seen, labels) {
		t.Fatalf("elements freed in wrong order: %v", seen)
	}
	if heap.Live() != 0 {
		t.Fatalf("leaked %d allocations", heap.Live())
	}
}

func TestArray_EncodeFailureFreesEverything(t *testing.T) {
	heap := memory.NewHeap()
	boom := stderrors.New("boom")

	_, err := EncodeArrayWith(heap, heap, []string{"ok", "bad"}, Pointer.Size, Pointer.Align,
		func(al *AllocationList, addr Addr, s string) error {
			if s == "bad" {
				return boom
			}
			p, err := EncodeCString(heap, heap, s)
			if err != nil {
				return err
			}
			al.Add(p, uintptr(len(s))+1, 1)
			return heap.WriteAddr(addr, p)
		})
	if !stderrors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}
	if heap.Live() != 0 {
		t.Fatalf("failed encode leaked %d allocations", heap.Live())
	}
}

func TestFreeArray_Null(t *testing.T) {
	heap := memory.NewHeap()
	if err := FreeArray(heap, heap, 0, 8, 8, nil); errKind(err) != errors.KindNilPointer {
		t.Fatalf("Expected nil pointer error, got %v", err)
	}
}

func TestCString_RoundTrip(t *testing.T) {
	tests := []string{"", "OK", "héllo wörld", "日本語", "emoji \U0001F600"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			heap := memory.NewHeap()
			addr, err := EncodeCString(heap, heap, s)
			if err != nil {
				t.Fatal(err)
			}

			term, _ := heap.ReadU8(addr + Addr(len(s)))
			if term != 0 {
				t.Fatal("missing NUL terminator")
			}

			got, err := DecodeCString(heap, addr)
			if err != nil {
				t.Fatal(err)
			}
			if got != s {
				t.Fatalf("round trip = %q, want %q", got, s)
			}

			if err := FreeCString(heap, heap, addr); err != nil {
				t.Fatal(err)
			}
			if heap.Live() != 0 {
				t.Fatal("string leaked")
			}
		})
	}
}

func TestCString_EmbeddedNul(t *testing.T) {
	heap := memory.NewHeap()
	_, err := EncodeCString(heap, heap, "a\x00b")
	if errKind(err) != errors.KindEmbeddedNul {
		t.Fatalf("Expected embedded NUL error, got %v", err)
	}
	if !errors.IsContractViolation(err) {
		t.Fatal("embedded NUL must be a contract violation")
	}
	if heap.Live() != 0 {
		t.Fatal("rejected string must not allocate")
	}
}

func TestOptCString(t *testing.T) {
	heap := memory.NewHeap()

	addr, err := EncodeOptCString(heap, heap, None[string]())
	if err != nil || addr != 0 {
		t.Fatalf("absent string must encode as null, got %#x %v", uintptr(addr), err)
	}
	o, err := DecodeOptCString(heap, 0)
	if err != nil || o.HasValue {
		t.Fatalf("null must decode as absent, got %+v %v", o, err)
	}

	addr, _ = EncodeOptCString(heap, heap, Some("x"))
	o, _ = DecodeOptCString(heap, addr)
	if !o.HasValue || o.Value != "x" {
		t.Fatalf("DecodeOptCString = %+v", o)
	}
	_ = FreeCString(heap, heap, addr)
}

func TestFreeCString_Null(t *testing.T) {
	heap := memory.NewHeap()
	err := FreeCString(heap, heap, 0)
	if errKind(err) != errors.KindNilPointer || !errors.IsContractViolation(err) {
		t.Fatalf("Expected nil pointer contract violation, got %v", err)
	}
}

func TestFreeCString_DoubleFree(t *testing.T) {
	heap := memory.NewHeap()
	addr, _ := EncodeCString(heap, heap, "x")
	if err := FreeCString(heap, heap, addr); err != nil {
		t.Fatal(err)
	}
	// the terminator scan already fails on freed memory
	if err := FreeCString(heap, heap, addr); err == nil {
		t.Fatal("Expected second free to be rejected")
	}
}

func TestDecodeStringN(t *testing.T) {
	heap := memory.NewHeap()
	addr, n, err := EncodeBytes(heap, heap, "label text")
	if err != nil {
		t.Fatal(err)
	}

	got, err := DecodeStringN(heap, addr, 5)
	if err != nil || got != "label" {
		t.Fatalf("DecodeStringN = %q, %v", got, err)
	}
	got, err = DecodeStringN(heap, addr, n)
	if err != nil || got != "label text" {
		t.Fatalf("DecodeStringN full = %q, %v", got, err)
	}
	got, err = DecodeStringN(heap, 0, 0)
	if err != nil || got != "" {
		t.Fatalf("zero length must not read, got %q, %v", got, err)
	}
	if _, err := DecodeStringN(heap, 0, 3); err == nil {
		t.Fatal("Expected null pointer with length to fail")
	}

	FreeBytes(heap, addr, n)
	if heap.Live() != 0 {
		t.Fatal("bytes leaked")
	}
}

func TestLossy(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"valid", []byte("abc"), "abc"},
		{"empty", []byte{}, ""},
		{"single invalid", []byte{'a', 0xff, 'b'}, "a�b"},
		{"two invalid", []byte{0xff, 0xfe}, "��"},
		{"truncated", []byte{'x', 0xe6, 0x97}, "x�"},
		{"truncated four byte", []byte{0xf0, 0x9f, 0x98, 'a'}, "�a"},
		{"surrogate", []byte{0xed, 0xa0, 0x80}, "���"},
		{"overlong", []byte{0xe0, 0x80, 'z'}, "��z"},
		{"lead then ascii", []byte{0xc3, 'k'}, "�k"},
		{"valid multibyte kept", []byte("é\xff"), "é�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lossy(tt.in); got != tt.want {
				t.Errorf("Lossy(%x) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeCString_Lossy(t *testing.T) {
	heap := memory.NewHeap()
	addr, _ := heap.Alloc(4, 1)
	_ = heap.Write(addr, []byte{'o', 0xc3, 'k', 0})

	got, err := DecodeCString(heap, addr)
	if err != nil {
		t.Fatal(err)
	}
	if got != "o�k" {
		t.Fatalf("DecodeCString = %q", got)
	}
	heap.Free(addr, 4, 1)
}

func TestAllocationList(t *testing.T) {
	heap := memory.NewHeap()
	al := NewAllocationList()

	for i := 0; i < 3; i++ {
		if _, err := al.Alloc(heap, 16, 8); err != nil {
			t.Fatal(err)
		}
	}
	if al.Count() != 3 || heap.Live() != 3 {
		t.Fatalf("Count=%d Live=%d", al.Count(), heap.Live())
	}

	al.FreeAndRelease(heap)
	if heap.Live() != 0 {
		t.Fatalf("leaked %d", heap.Live())
	}
}

func TestMapLayout(t *testing.T) {
	type role uint8
	l := Map(U8, func(v uint8) role { return role(v) }, func(r role) uint8 { return uint8(r) })
	heap := memory.NewHeap()
	addr, _ := heap.Alloc(l.Size, l.Align)
	if err := l.Store(heap, addr, role(9)); err != nil {
		t.Fatal(err)
	}
	got, err := l.Load(heap, addr)
	if err != nil || got != 9 {
		t.Fatalf("Map round trip = %v, %v", got, err)
	}
	heap.Free(addr, l.Size, l.Align)
}

func TestF64Array(t *testing.T) {
	type rect struct{ x0, y0, x1, y1 float64 }
	l := F64Array(4,
		func(v []float64) rect { return rect{v[0], v[1], v[2], v[3]} },
		func(r rect) []float64 { return []float64{r.x0, r.y0, r.x1, r.y1} })

	heap := memory.NewHeap()
	addr, _ := heap.Alloc(l.Size, l.Align)
	want := rect{1, 2, 3.5, 4.5}
	if err := l.Store(heap, addr, want); err != nil {
		t.Fatal(err)
	}
	got, err := l.Load(heap, addr)
	if err != nil || got != want {
		t.Fatalf("F64Array round trip = %+v, %v", got, err)
	}
	heap.Free(addr, l.Size, l.Align)
}
