package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"go.uber.org/zap"

	"github.com/padview/padview/internal/inspect"
)

var (
	recLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[{}():]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(recLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// File is the root AST node for a record description file.
type File struct {
	Records []*Record `parser:"@@*"`
}

// Record is one named record with its fields in declared order.
type Record struct {
	Name   string       `parser:"'record' @Ident"`
	Fields []*FieldDecl `parser:"'{' @@* '}'"`
}

// FieldDecl is a single field line: name ':' type [ 'align' N ].
type FieldDecl struct {
	Pos   lexer.Position `parser:""`
	Name  string         `parser:"@Ident ':'"`
	Type  TypeRef        `parser:"@@"`
	Align *int           `parser:"('align' @Number)?"`
}

// TypeRef is either a primitive type name or a raw bytes(N) run.
type TypeRef struct {
	Bytes *int    `parser:"'bytes' '(' @Number ')'"`
	Prim  *string `parser:"| @Ident"`
}

// primitives maps type names to their size in bytes. For machine
// primitives the natural alignment equals the size.
var primitives = map[string]int{
	"u8": 1, "i8": 1, "bool": 1,
	"u16": 2, "i16": 2,
	"u32": 4, "i32": 4, "f32": 4,
	"u64": 8, "i64": 8, "f64": 8,
}

// RecordSpec is a resolved record: its name plus field specs ready to
// hand to inspect.Compute.
type RecordSpec struct {
	Name   string
	Fields []inspect.FieldSpec
}

// ParseFile reads and parses a record description file.
func ParseFile(filename string) ([]RecordSpec, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return parse(filename, string(src))
}

// ParseString parses record descriptions from a string.
func ParseString(src string) ([]RecordSpec, error) {
	return parse("", src)
}

func parse(filename, src string) ([]RecordSpec, error) {
	file, err := fileParser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return resolve(file)
}

func resolve(file *File) ([]RecordSpec, error) {
	if len(file.Records) == 0 {
		return nil, fmt.Errorf("no record declarations found")
	}

	specs := make([]RecordSpec, 0, len(file.Records))
	for _, rec := range file.Records {
		fields := make([]inspect.FieldSpec, 0, len(rec.Fields))
		for i, decl := range rec.Fields {
			size, align, err := resolveType(decl.Type)
			if err != nil {
				return nil, fmt.Errorf("%s: field %q: %w", decl.Pos, decl.Name, err)
			}
			if decl.Align != nil {
				align = *decl.Align
			}
			fields = append(fields, inspect.FieldSpec{
				Name:          decl.Name,
				Size:          size,
				Align:         align,
				DeclaredIndex: i,
			})
		}

		Logger().Debug("resolved record",
			zap.String("record", rec.Name),
			zap.Int("fields", len(fields)))

		specs = append(specs, RecordSpec{Name: rec.Name, Fields: fields})
	}

	return specs, nil
}

// resolveType returns the size and natural alignment of a type reference.
func resolveType(t TypeRef) (size, align int, err error) {
	if t.Bytes != nil {
		if *t.Bytes < 1 {
			return 0, 0, fmt.Errorf("bytes(%d): length must be at least 1", *t.Bytes)
		}
		return *t.Bytes, 1, nil
	}

	size, ok := primitives[*t.Prim]
	if !ok {
		return 0, 0, fmt.Errorf("unknown type %q", *t.Prim)
	}
	return size, size, nil
}
