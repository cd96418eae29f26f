package tuplegen

import (
	"errors"
	"fmt"
	"go/token"
	"path"
)

const (
	// DefaultMaxArity is the number of elements held by the largest
	// generated tuple type when no other maximum is configured.
	DefaultMaxArity = 16

	// DefaultTupleImport is the import path of the tuple package
	// referenced by the generated tuplefunc package.
	DefaultTupleImport = "github.com/tuplealg/generic/tuple"

	maxSupportedArity = 64
)

// ErrArity is returned (wrapped) when a configured maximum arity
// is out of range.
var ErrArity = errors.New("invalid maximum arity")

// Config holds the parameters of a generation run.
type Config struct {
	// MaxArity is the arity of the largest tuple type. Every
	// operation is generated for all arities up to and including it.
	MaxArity int

	// Package is the name of the generated package. When empty, the
	// name of the package being generated ("tuple" or "tuplefunc")
	// is used.
	Package string

	// TupleImport is the import path of the tuple package, used when
	// generating the tuplefunc package. When empty,
	// DefaultTupleImport is used.
	TupleImport string
}

// Validate reports whether c describes a generation run that can
// be carried out.
func (c Config) Validate() error {
	if c.MaxArity < 1 || c.MaxArity > maxSupportedArity {
		return fmt.Errorf("%w %d: must be between 1 and %d", ErrArity, c.MaxArity, maxSupportedArity)
	}
	if c.Package != "" && !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}
	if c.TupleImport != "" && !token.IsIdentifier(path.Base(c.TupleImport)) {
		return fmt.Errorf("tuple import path %q does not end in a valid package name", c.TupleImport)
	}
	return nil
}

func (c Config) withDefaults(pkg string) Config {
	if c.Package == "" {
		c.Package = pkg
	}
	if c.TupleImport == "" {
		c.TupleImport = DefaultTupleImport
	}
	return c
}
