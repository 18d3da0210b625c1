package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/padview/padview/internal/inspect"
)

// ParseTriples parses a list of "name:size[:align]" field descriptions
// into field specs, preserving declared order.
//
// Semantics:
//   - "id:4:4"  : field named id, 4 bytes, aligned to 4
//   - "crc:2"   : alignment omitted, defaults to the natural alignment
//     for the size (largest power of two dividing it, capped at 8)
//
// Examples:
//
//	"magic:4:4"   → FieldSpec{Name: "magic", Size: 4, Align: 4}
//	"payload:13"  → FieldSpec{Name: "payload", Size: 13, Align: 1}
//	"seq:8"       → FieldSpec{Name: "seq", Size: 8, Align: 8}
func ParseTriples(specs []string) ([]inspect.FieldSpec, error) {
	fields := make([]inspect.FieldSpec, 0, len(specs))
	for i, s := range specs {
		f, err := parseTriple(s, i)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseTriple(s string, index int) (inspect.FieldSpec, error) {
	var f inspect.FieldSpec

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return f, fmt.Errorf("invalid field spec %q (expected name:size[:align])", s)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return f, fmt.Errorf("invalid field spec %q: empty name", s)
	}

	size, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return f, fmt.Errorf("invalid size in %q: %s", s, parts[1])
	}

	align := naturalAlign(size)
	if len(parts) == 3 {
		align, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return f, fmt.Errorf("invalid alignment in %q: %s", s, parts[2])
		}
	}

	return inspect.FieldSpec{
		Name:          name,
		Size:          size,
		Align:         align,
		DeclaredIndex: index,
	}, nil
}

// naturalAlign returns the largest power of two dividing size, capped at
// the word size. Sizes below 1 are rejected later by inspect.
func naturalAlign(size int) int {
	if size < 1 {
		return 1
	}
	align := 1
	for align < 8 && size%(align*2) == 0 {
		align *= 2
	}
	return align
}
