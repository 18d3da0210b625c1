package inspect

import (
	"fmt"
	"sort"
)

// FieldSpec describes one field of a record: its name, size and alignment
// in bytes, and its position in the declared order.
type FieldSpec struct {
	Name          string
	Size          int
	Align         int
	DeclaredIndex int
}

// Policy selects how fields are ordered before offsets are assigned.
type Policy int

const (
	// DeclaredOrder lays fields out exactly as declared.
	DeclaredOrder Policy = iota
	// CompilerOptimized reorders fields by descending alignment before
	// laying them out, the strategy compilers use to shrink records.
	CompilerOptimized
)

func (p Policy) String() string {
	switch p {
	case DeclaredOrder:
		return "declared"
	case CompilerOptimized:
		return "optimized"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a policy flag value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "declared", "declared-order":
		return DeclaredOrder, nil
	case "optimized", "compiler-optimized":
		return CompilerOptimized, nil
	default:
		return 0, fmt.Errorf("invalid policy: %s (expected declared or optimized)", s)
	}
}

// Result holds the computed layout of one record. Each call to Compute
// produces a fresh Result owned by the caller.
type Result struct {
	Offsets      map[string]int
	TotalSize    int
	TotalPadding int
	FieldOrder   []string
}

// Compute assigns a byte offset to every field under the given policy and
// returns the total size and padding of the record.
//
// Validation runs before any offset math: a duplicate name, a non-positive
// size, or a non-power-of-two alignment fails with *InvalidFieldError and
// nothing is computed. The walk itself keeps a cursor from offset 0,
// rounding it up to each field's alignment, then rounds the total size up
// to the maximum field alignment.
func Compute(fields []FieldSpec, policy Policy) (*Result, error) {
	if err := validate(fields); err != nil {
		return nil, err
	}

	ordered := fields
	if policy == CompilerOptimized {
		ordered = make([]FieldSpec, len(fields))
		copy(ordered, fields)
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Align != ordered[j].Align {
				return ordered[i].Align > ordered[j].Align
			}
			return ordered[i].DeclaredIndex < ordered[j].DeclaredIndex
		})
	}

	offsets := make(map[string]int, len(ordered))
	order := make([]string, 0, len(ordered))
	offset := 0
	maxAlign := 1
	payload := 0

	for _, f := range ordered {
		offset = alignTo(offset, f.Align)
		offsets[f.Name] = offset
		order = append(order, f.Name)

		if f.Align > maxAlign {
			maxAlign = f.Align
		}
		offset += f.Size
		payload += f.Size
	}

	total := alignTo(offset, maxAlign)

	return &Result{
		Offsets:      offsets,
		TotalSize:    total,
		TotalPadding: total - payload,
		FieldOrder:   order,
	}, nil
}

func validate(fields []FieldSpec) error {
	if len(fields) == 0 {
		return ErrNoFields
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			return &InvalidFieldError{Field: f.Name, Reason: ReasonDuplicateName}
		}
		seen[f.Name] = struct{}{}

		if f.Size < 1 {
			return &InvalidFieldError{Field: f.Name, Reason: ReasonBadSize}
		}
		if f.Align < 1 || f.Align&(f.Align-1) != 0 {
			return &InvalidFieldError{Field: f.Name, Reason: ReasonBadAlign}
		}
	}

	return nil
}

// alignTo rounds offset up to the next multiple of align.
// align must be a power of two.
func alignTo(offset, align int) int {
	return (offset + align - 1) &^ (align - 1)
}
