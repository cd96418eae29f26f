// Package tuplegen generates the source of the tuple and tuplefunc
// packages.
//
// Go type parameter lists have a fixed length, so each tuple arity
// needs its own type and each operation needs its own function or
// method per arity (or per pair of arities for merging). The
// generator enumerates those instances with a Matrix and emits one
// declaration for each of them.
package tuplegen

import (
	"bytes"
	"fmt"
	"path"

	"github.com/dave/jennifer/jen"
)

// Tuple returns the formatted source of the tuple package.
func Tuple(cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults("tuple")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return render(cfg.Package, tupleFile(cfg))
}

// Funcs returns the formatted source of the tuplefunc package.
func Funcs(cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults("tuplefunc")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return render(cfg.Package, funcsFile(cfg))
}

func render(pkg string, f *jen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("cannot render generated %s source: %w", pkg, err)
	}
	return buf.Bytes(), nil
}

func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by tuplegen. DO NOT EDIT.")
	return f
}

// tupleOps lists the operations declared in the tuple package.
var tupleOps = map[Op]bool{
	OpType:      true,
	OpAppend:    true,
	OpPrepend:   true,
	OpPluckTail: true,
	OpPluck:     true,
	OpSplit:     true,
	OpMerge:     true,
}

// funcsOps lists the operations declared in the tuplefunc package,
// in the order they are emitted for each arity.
var funcsOps = []Op{OpCall, OpRefCall, OpToArgs, OpFromArgs, OpToResults, OpFromResults}

func tupleFile(cfg Config) *jen.File {
	f := newFile(cfg.Package)
	f.Comment("MaxArity is the number of elements held by the largest tuple type")
	f.Comment("in this package.")
	f.Const().Id("MaxArity").Op("=").Lit(cfg.MaxArity)

	e := emitter{f: f}
	for _, inst := range (Matrix{MaxArity: cfg.MaxArity}).Instances() {
		if tupleOps[inst.Op] {
			e.emit(inst)
		}
	}
	return f
}

func funcsFile(cfg Config) *jen.File {
	f := newFile(cfg.Package)
	f.ImportName(cfg.TupleImport, path.Base(cfg.TupleImport))

	e := emitter{f: f, qual: cfg.TupleImport}
	for n := range (Matrix{MaxArity: cfg.MaxArity}).Arities() {
		for _, op := range funcsOps {
			e.emit(Instance{Op: op, Arity: n})
		}
	}
	return f
}

// emitter adds the declarations of matrix instances to a file.
type emitter struct {
	f *jen.File
	// qual is the import path of the tuple package, empty when
	// the file is the tuple package itself.
	qual string
}

func (e emitter) emit(inst Instance) {
	n := inst.Arity
	switch inst.Op {
	case OpType:
		e.tupleType(n)
	case OpAppend:
		e.appendN(n)
	case OpPrepend:
		e.prependN(n)
	case OpPluckTail:
		e.pluckTail(n)
	case OpPluck:
		e.pluck(n)
	case OpSplit:
		e.split(n)
	case OpMerge:
		e.merge(n, inst.Other)
	case OpCall:
		e.call(n)
	case OpRefCall:
		e.refCall(n)
	case OpToArgs:
		e.toArgs(n)
	case OpFromArgs:
		e.fromArgs(n)
	case OpToResults:
		e.toResults(n)
	case OpFromResults:
		e.fromResults(n)
	default:
		panic(fmt.Sprintf("no declaration for instance %v", inst))
	}
}

func (e emitter) tupleType(n int) {
	as := vars("A", n)
	ps := vars("a", n)
	t := e.shape(as)
	name := t.name()

	e.f.Line()
	e.f.Commentf("%s is a tuple holding %s.", name, count(n, "value"))
	e.f.Type().Id(name).Types(typeParams(as)...).StructFunc(func(g *jen.Group) {
		for _, a := range as {
			g.Id(a).Id(a)
		}
	})

	e.f.Line()
	e.f.Commentf("Mk%s returns a %s holding the given values.", name, name)
	e.f.Func().Id("Mk"+name).Types(typeParams(as)...).Params(params(ps, as)...).Add(t.typ()).Block(
		jen.Return(t.typ().Values(ids(ps)...)),
	)

	e.f.Line()
	e.f.Comment("T returns the values held in t.")
	e.f.Func().Params(jen.Id("t").Add(t.typ())).Id("T").Params().Add(results(ids(as))).Block(
		jen.Return(fields("t", 0, n)...),
	)

	e.f.Line()
	e.f.Comment("Len returns the number of values held in t.")
	e.f.Func().Params(jen.Id("t").Add(t.typ())).Id("Len").Params().Int().Block(
		jen.Return(jen.Lit(n)),
	)
}

func (e emitter) appendN(n int) {
	as := vars("A", n)
	e.f.Line()
	e.f.Commentf("Append%d returns a tuple holding the values of t followed by e.", n)
	e.f.Func().Id(fmt.Sprintf("Append%d", n)).Types(typeParams(as, "E")...).
		Params(jen.Id("t").Add(e.shape(as).typ()), jen.Id("e").Id("E")).
		Add(e.shape(concat(as, "E")).typ()).
		Block(
			jen.Return(e.mk(append(fields("t", 0, n), jen.Id("e"))...)),
		)
}

func (e emitter) prependN(n int) {
	as := vars("A", n)
	e.f.Line()
	e.f.Commentf("Prepend%d returns a tuple holding e followed by the values of t.", n)
	e.f.Func().Id(fmt.Sprintf("Prepend%d", n)).Types(typeParams(as, "E")...).
		Params(jen.Id("t").Add(e.shape(as).typ()), jen.Id("e").Id("E")).
		Add(e.shape(concat([]string{"E"}, as...)).typ()).
		Block(
			jen.Return(e.mk(append([]jen.Code{jen.Id("e")}, fields("t", 0, n)...)...)),
		)
}

func (e emitter) pluckTail(n int) {
	as := vars("A", n)
	e.f.Line()
	e.f.Comment("PluckTail returns a tuple holding all but the last value of t,")
	e.f.Commentf("and the last value. It is the inverse of Append%d.", n-1)
	e.f.Func().Params(jen.Id("t").Add(e.shape(as).typ())).Id("PluckTail").Params().
		Params(e.shape(as[:n-1]).typ(), jen.Id(as[n-1])).
		Block(
			jen.Return(e.mk(fields("t", 0, n-1)...), fields("t", n-1, n)[0]),
		)
}

func (e emitter) pluck(n int) {
	as := vars("A", n)
	e.f.Line()
	e.f.Comment("Pluck returns the first value of t and a tuple holding")
	e.f.Commentf("the remaining values. It is the inverse of Prepend%d.", n-1)
	e.f.Func().Params(jen.Id("t").Add(e.shape(as).typ())).Id("Pluck").Params().
		Params(jen.Id(as[0]), e.shape(as[1:]).typ()).
		Block(
			jen.Return(jen.Id("t").Dot("A0"), e.mk(fields("t", 1, n)...)),
		)
}

func (e emitter) split(n int) {
	as := vars("A", n)
	k := SplitPoint(n)
	e.f.Line()
	e.f.Commentf("Split returns a tuple holding the first %d values of t", k)
	e.f.Commentf("and a tuple holding the remaining %d.", n-k)
	e.f.Func().Params(jen.Id("t").Add(e.shape(as).typ())).Id("Split").Params().
		Params(e.shape(as[:k]).typ(), e.shape(as[k:]).typ()).
		Block(
			jen.Return(e.mk(fields("t", 0, k)...), e.mk(fields("t", k, n)...)),
		)
}

func (e emitter) merge(i, j int) {
	as := vars("A", i)
	bs := vars("B", j)
	name := fmt.Sprintf("Merge_%d_%d", i, j)
	e.f.Line()
	e.f.Commentf("%s returns a tuple holding the values of a", name)
	e.f.Comment("followed by the values of b.")
	e.f.Func().Id(name).Types(typeParams(as, bs...)...).
		Params(jen.Id("a").Add(e.shape(as).typ()), jen.Id("b").Add(e.shape(bs).typ())).
		Add(e.shape(concat(as, bs...)).typ()).
		Block(
			jen.Return(e.mk(append(fields("a", 0, i), fields("b", 0, j)...)...)),
		)
}

func (e emitter) call(n int) {
	as := vars("A", n)
	name := fmt.Sprintf("Call_%d", n)
	e.f.Line()
	e.f.Commentf("%s calls f with the values of t as arguments, in order.", name)
	e.f.Func().Id(name).Types(typeParams(as, "R")...).
		Params(jen.Id("f").Add(funcType(ids(as), jen.Id("R"))), jen.Id("t").Add(e.shape(as).typ())).
		Id("R").
		Block(
			jen.Return(jen.Id("f").Call(fields("t", 0, n)...)),
		)
}

func (e emitter) refCall(n int) {
	as := vars("A", n)
	ptrs := make([]jen.Code, n)
	refs := make([]jen.Code, n)
	for i, a := range as {
		ptrs[i] = jen.Op("*").Id(a)
		refs[i] = jen.Op("&").Add(fields("t", i, i+1)[0])
	}
	name := fmt.Sprintf("RefCall_%d", n)
	e.f.Line()
	e.f.Commentf("%s calls f with pointers to the values of t, in order.", name)
	e.f.Comment("The tuple itself is left in place.")
	e.f.Func().Id(name).Types(typeParams(as, "R")...).
		Params(jen.Id("f").Add(funcType(ptrs, jen.Id("R"))), jen.Id("t").Op("*").Add(e.shape(as).typ())).
		Id("R").
		Block(
			jen.Return(jen.Id("f").Call(refs...)),
		)
}

func (e emitter) toArgs(n int) {
	as := vars("A", n)
	name := fmt.Sprintf("ToA_%d", n)
	e.f.Line()
	e.f.Commentf("%s converts a function taking %s", name, count(n, "argument"))
	e.f.Comment("into a function taking a single tuple argument.")
	e.f.Func().Id(name).Types(typeParams(as, "R")...).
		Params(jen.Id("f").Add(funcType(ids(as), jen.Id("R")))).
		Add(funcType([]jen.Code{e.shape(as).typ()}, jen.Id("R"))).
		Block(
			jen.Return(jen.Func().Params(jen.Id("t").Add(e.shape(as).typ())).Id("R").Block(
				jen.Return(jen.Id("f").Call(fields("t", 0, n)...)),
			)),
		)
}

func (e emitter) fromArgs(n int) {
	as := vars("A", n)
	ps := vars("a", n)
	name := fmt.Sprintf("FromA_%d", n)
	e.f.Line()
	e.f.Commentf("%s is the inverse of ToA_%d.", name, n)
	e.f.Func().Id(name).Types(typeParams(as, "R")...).
		Params(jen.Id("f").Add(funcType([]jen.Code{e.shape(as).typ()}, jen.Id("R")))).
		Add(funcType(ids(as), jen.Id("R"))).
		Block(
			jen.Return(jen.Func().Params(params(ps, as)...).Id("R").Block(
				jen.Return(jen.Id("f").Call(e.mk(ids(ps)...))),
			)),
		)
}

func (e emitter) toResults(n int) {
	rs := vars("R", n)
	rvs := vars("r", n)
	name := fmt.Sprintf("ToR_%d", n)
	call := jen.Id("f").Call(jen.Id("a"))
	if n > 0 {
		call = jen.List(ids(rvs)...).Op(":=").Add(call)
	}
	e.f.Line()
	e.f.Commentf("%s converts a function returning %s", name, count(n, "value"))
	e.f.Comment("into a function returning a single tuple.")
	e.f.Func().Id(name).Types(typeParams([]string{"A"}, rs...)...).
		Params(jen.Id("f").Add(funcType([]jen.Code{jen.Id("A")}, results(ids(rs))))).
		Add(funcType([]jen.Code{jen.Id("A")}, e.shape(rs).typ())).
		Block(
			jen.Return(jen.Func().Params(jen.Id("a").Id("A")).Add(e.shape(rs).typ()).Block(
				call,
				jen.Return(e.mk(ids(rvs)...)),
			)),
		)
}

func (e emitter) fromResults(n int) {
	rs := vars("R", n)
	name := fmt.Sprintf("FromR_%d", n)
	body := jen.Id("f").Call(jen.Id("a"))
	if n > 0 {
		body = jen.Return(jen.Id("f").Call(jen.Id("a")).Dot("T").Call())
	}
	e.f.Line()
	e.f.Commentf("%s is the inverse of ToR_%d.", name, n)
	e.f.Func().Id(name).Types(typeParams([]string{"A"}, rs...)...).
		Params(jen.Id("f").Add(funcType([]jen.Code{jen.Id("A")}, e.shape(rs).typ()))).
		Add(funcType([]jen.Code{jen.Id("A")}, results(ids(rs)))).
		Block(
			jen.Return(jen.Func().Params(jen.Id("a").Id("A")).Add(results(ids(rs))).Block(body)),
		)
}

// mk returns a call of the tuple constructor taking vals.
func (e emitter) mk(vals ...jen.Code) *jen.Statement {
	return e.ident(fmt.Sprintf("MkT%d", len(vals))).Call(vals...)
}

func (e emitter) shape(args []string) shape {
	return shape{qual: e.qual, args: args}
}

func (e emitter) ident(name string) *jen.Statement {
	return shape{qual: e.qual}.ident(name)
}

// shape describes a tuple type instantiated with the given
// type arguments.
type shape struct {
	qual string
	args []string
}

func (s shape) name() string {
	return fmt.Sprintf("T%d", len(s.args))
}

// typ returns a new statement naming the instantiated tuple type.
func (s shape) typ() *jen.Statement {
	return s.ident(s.name()).Types(ids(s.args)...)
}

func (s shape) ident(name string) *jen.Statement {
	if s.qual == "" {
		return jen.Id(name)
	}
	return jen.Qual(s.qual, name)
}

// funcType returns a function type with the given parameter types
// and result.
func funcType(params []jen.Code, result jen.Code) *jen.Statement {
	return jen.Func().Params(params...).Add(result)
}

// vars returns n identifiers made of prefix followed by an index.
func vars(prefix string, n int) []string {
	vs := make([]string, n)
	for i := range vs {
		vs[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return vs
}

func ids(names []string) []jen.Code {
	cs := make([]jen.Code, len(names))
	for i, name := range names {
		cs[i] = jen.Id(name)
	}
	return cs
}

// params returns a parameter list declaring names with the
// corresponding types.
func params(names, types []string) []jen.Code {
	cs := make([]jen.Code, len(names))
	for i := range names {
		cs[i] = jen.Id(names[i]).Id(types[i])
	}
	return cs
}

// fields returns the selectors of the fields lo to hi-1 of recv.
func fields(recv string, lo, hi int) []jen.Code {
	fs := make([]jen.Code, 0, hi-lo)
	for i := lo; i < hi; i++ {
		fs = append(fs, jen.Id(recv).Dot(fmt.Sprintf("A%d", i)))
	}
	return fs
}

// typeParams returns a type parameter list declaring all the
// given names with the any constraint. It is empty if there are
// no names, which jen renders as no list at all.
func typeParams(names []string, more ...string) []jen.Code {
	all := concat(names, more...)
	cs := ids(all)
	if len(all) > 0 {
		cs[len(all)-1] = jen.Id(all[len(all)-1]).Any()
	}
	return cs
}

// results returns a function result list for the given types.
func results(types []jen.Code) jen.Code {
	switch len(types) {
	case 0:
		return jen.Null()
	case 1:
		return types[0]
	}
	return jen.Params(types...)
}

func concat(xs []string, more ...string) []string {
	r := make([]string, 0, len(xs)+len(more))
	r = append(r, xs...)
	return append(r, more...)
}

func count(n int, noun string) string {
	switch n {
	case 0:
		return "no " + noun + "s"
	case 1:
		return "one " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
