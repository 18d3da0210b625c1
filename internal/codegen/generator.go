package codegen

import (
	"fmt"
	"strings"

	"github.com/padview/padview/internal/inspect"
)

// Generator emits a Go struct declaration for a computed layout. Fields
// appear in the order the layout placed them, with explicit padding
// markers where the layout inserts padding, so the declaration occupies
// exactly the computed size when compiled.
type Generator struct {
	name   string
	fields map[string]inspect.FieldSpec
	result *inspect.Result
}

// NewGenerator creates a generator for one record.
func NewGenerator(name string, fields []inspect.FieldSpec, result *inspect.Result) *Generator {
	byName := make(map[string]inspect.FieldSpec, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return &Generator{
		name:   name,
		fields: byName,
		result: result,
	}
}

// Generate returns the struct declaration as Go source (without package
// header or imports).
func (g *Generator) Generate() string {
	var out strings.Builder

	fmt.Fprintf(&out, "// %s occupies %d bytes (%d padding).\n",
		g.name, g.result.TotalSize, g.result.TotalPadding)
	fmt.Fprintf(&out, "type %s struct {\n", g.name)

	cursor := 0
	for _, name := range g.result.FieldOrder {
		f := g.fields[name]
		offset := g.result.Offsets[name]

		if offset > cursor {
			fmt.Fprintf(&out, "\t_ [%d]byte\n", offset-cursor)
		}
		fmt.Fprintf(&out, "\t%s %s // offset %d, size %d, align %d\n",
			name, goType(f), offset, f.Size, f.Align)
		cursor = offset + f.Size
	}

	if g.result.TotalSize > cursor {
		fmt.Fprintf(&out, "\t_ [%d]byte\n", g.result.TotalSize-cursor)
	}

	out.WriteString("}\n")
	return out.String()
}

// goType picks a Go type matching the field's size and alignment.
// Machine-word sizes with natural alignment map to unsigned integers;
// everything else becomes a byte array.
func goType(f inspect.FieldSpec) string {
	if f.Align == f.Size {
		switch f.Size {
		case 1:
			return "uint8"
		case 2:
			return "uint16"
		case 4:
			return "uint32"
		case 8:
			return "uint64"
		}
	}
	return fmt.Sprintf("[%d]byte", f.Size)
}
