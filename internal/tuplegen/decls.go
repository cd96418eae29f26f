package tuplegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
)

// Decl describes a top-level declaration in Go source.
type Decl struct {
	// Name is the declared identifier. Methods are qualified by
	// their receiver type name, as in "T3.Split".
	Name string

	// Text is the declaration without doc comment or body.
	Text string
}

// Declarations returns the top-level type, constant and function
// declarations in src, in source order. Bodies are left out, so it
// compares the API of generated files; use DiffSource to check that a
// file is up to date.
func Declarations(src []byte) ([]Decl, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	var decls []Decl
	add := func(name string, node any) error {
		var buf bytes.Buffer
		if err := printer.Fprint(&buf, fset, node); err != nil {
			return fmt.Errorf("cannot print %s: %w", name, err)
		}
		decls = append(decls, Decl{Name: name, Text: buf.String()})
		return nil
	}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil && len(d.Recv.List) > 0 {
				name = recvName(d.Recv.List[0].Type) + "." + name
			}
			sig := *d
			sig.Doc, sig.Body = nil, nil
			if err := add(name, &sig); err != nil {
				return nil, err
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					s := *spec
					s.Doc, s.Comment = nil, nil
					if err := add(spec.Name.Name, &s); err != nil {
						return nil, err
					}
				case *ast.ValueSpec:
					s := *spec
					s.Doc, s.Comment = nil, nil
					for _, id := range spec.Names {
						if err := add(id.Name, &s); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}
	return decls, nil
}

func recvName(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.StarExpr:
		return recvName(x.X)
	case *ast.IndexExpr:
		return recvName(x.X)
	case *ast.IndexListExpr:
		return recvName(x.X)
	}
	return fmt.Sprintf("%T", x)
}
