package tree

import (
	"fmt"
)

// enumName returns the text name of an enumeration value.
func enumName[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

func enumText[T ~uint8](kind string, names []string, v T) ([]byte, error) {
	if int(v) >= len(names) {
		return nil, fmt.Errorf("invalid %s %d", kind, v)
	}
	return []byte(names[v]), nil
}

func parseEnum[T ~uint8](kind string, names []string, text []byte) (T, error) {
	s := string(text)
	for i, n := range names {
		if n == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

// Valid enumeration ranges, used to reject out-of-range values arriving
// from foreign callers.
func validEnum[T ~uint8](names []string, v T) bool {
	return int(v) < len(names)
}
