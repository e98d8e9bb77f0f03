package codec

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/wippyai/accesskit-go/errors"
)

// Strlener is implemented by memories that can locate a NUL terminator
// faster than byte-at-a-time reads.
type Strlener interface {
	Strlen(addr Addr) (uintptr, error)
}

// EncodeCString copies s into a freshly allocated NUL-terminated buffer. A
// NUL byte inside s cannot be represented and is a contract violation.
// The result is released with FreeCString.
func EncodeCString(mem Memory, alloc Allocator, s string) (Addr, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return 0, errors.EmbeddedNul(errors.PhaseEncode, i)
	}
	addr, err := alloc.Alloc(uintptr(len(s))+1, 1)
	if err != nil {
		return 0, err
	}
	if len(s) > 0 {
		data := unsafe.Slice(unsafe.StringData(s), len(s))
		if err := mem.Write(addr, data); err != nil {
			alloc.Free(addr, uintptr(len(s))+1, 1)
			return 0, err
		}
	}
	if err := mem.WriteU8(addr+Addr(len(s)), 0); err != nil {
		alloc.Free(addr, uintptr(len(s))+1, 1)
		return 0, err
	}
	return addr, nil
}

// EncodeOptCString encodes an optional string as a nullable pointer.
func EncodeOptCString(mem Memory, alloc Allocator, s Opt[string]) (Addr, error) {
	v, ok := s.Get()
	if !ok {
		return 0, nil
	}
	return EncodeCString(mem, alloc, v)
}

// EncodeBytes copies s verbatim without a terminator and returns the address
// and length. The buffer is released with FreeBytes.
func EncodeBytes(mem Memory, alloc Allocator, s string) (Addr, uintptr, error) {
	if len(s) == 0 {
		return 0, 0, nil
	}
	addr, err := alloc.Alloc(uintptr(len(s)), 1)
	if err != nil {
		return 0, 0, err
	}
	if err := mem.Write(addr, []byte(s)); err != nil {
		alloc.Free(addr, uintptr(len(s)), 1)
		return 0, 0, err
	}
	return addr, uintptr(len(s)), nil
}

// FreeBytes releases a buffer produced by EncodeBytes.
func FreeBytes(alloc Allocator, addr Addr, n uintptr) {
	if addr == 0 {
		return
	}
	alloc.Free(addr, n, 1)
}

// Strlen returns the number of bytes before the NUL terminator at addr.
func Strlen(mem Memory, addr Addr) (uintptr, error) {
	if addr == 0 {
		return 0, errors.NilPointer(errors.PhaseDecode, nil, "const char *")
	}
	if s, ok := mem.(Strlener); ok {
		return s.Strlen(addr)
	}
	var n uintptr
	for {
		b, err := mem.ReadU8(addr + Addr(n))
		if err != nil {
			return 0, err
		}
		if b == 0 {
			return n, nil
		}
		n++
	}
}

// DecodeCString copies a caller-owned NUL-terminated string into Go,
// replacing invalid UTF-8.
func DecodeCString(mem Memory, addr Addr) (string, error) {
	n, err := Strlen(mem, addr)
	if err != nil {
		return "", err
	}
	return DecodeStringN(mem, addr, n)
}

// DecodeOptCString is DecodeCString with null meaning absent.
func DecodeOptCString(mem Memory, addr Addr) (Opt[string], error) {
	if addr == 0 {
		return None[string](), nil
	}
	s, err := DecodeCString(mem, addr)
	if err != nil {
		return None[string](), err
	}
	return Some(s), nil
}

// DecodeStringN copies n caller-owned bytes into Go, replacing invalid
// UTF-8. A zero length reads nothing.
func DecodeStringN(mem Memory, addr Addr, n uintptr) (string, error) {
	if n == 0 {
		return "", nil
	}
	if addr == 0 {
		return "", errors.NilPointer(errors.PhaseDecode, nil, "const char *")
	}
	b, err := mem.Read(addr, n)
	if err != nil {
		return "", err
	}
	return Lossy(b), nil
}

// FreeCString releases a string returned by EncodeCString. Passing null is a
// contract violation.
func FreeCString(mem Memory, alloc Allocator, addr Addr) error {
	if addr == 0 {
		return errors.NilPointer(errors.PhaseRelease, []string{"string"}, "char *")
	}
	n, err := Strlen(mem, addr)
	if err != nil {
		return err
	}
	alloc.Free(addr, n+1, 1)
	return nil
}

// Lossy converts b to a valid UTF-8 string. Each maximal prefix of an
// invalid sequence becomes one U+FFFD, so a truncated multibyte character
// yields a single replacement and the result is deterministic.
func Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 8)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
			b = b[invalidPrefix(b):]
			continue
		}
		sb.Write(b[:size])
		b = b[size:]
	}
	return sb.String()
}

// invalidPrefix returns the length of the longest prefix of b that could
// still begin a well-formed sequence, at least 1.
func invalidPrefix(b []byte) int {
	lo, hi := byte(0x80), byte(0xBF)
	var need int
	switch c := b[0]; {
	case c >= 0xC2 && c <= 0xDF:
		need = 1
	case c == 0xE0:
		need, lo = 2, 0xA0
	case c == 0xED:
		need, hi = 2, 0x9F
	case c >= 0xE1 && c <= 0xEF:
		need = 2
	case c == 0xF0:
		need, lo = 3, 0x90
	case c == 0xF4:
		need, hi = 3, 0x8F
	case c >= 0xF1 && c <= 0xF3:
		need = 3
	default:
		return 1
	}
	n := 1
	for ; n <= need && n < len(b); n++ {
		if b[n] < lo || b[n] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return n
}
