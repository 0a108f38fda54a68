// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"sort"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	rudd "github.com/matejpavlik/cudd-3val"
)

// exprLexer tokenizes a Boolean expression over identifiers, the unary
// negation "!", and the binary connectives "&", "|", "^", with parentheses
// for grouping.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[!&|^()]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// Expr is the lowest-precedence production: a disjunction of Xor terms.
type Expr struct {
	Pos  lexer.Position
	Or   []*XorExpr `@@ ("|" @@)*`
}

// XorExpr is a chain of exclusive-or'd And terms.
type XorExpr struct {
	Pos lexer.Position
	Xor []*AndExpr `@@ ("^" @@)*`
}

// AndExpr is a chain of conjoined Not terms.
type AndExpr struct {
	Pos lexer.Position
	And []*NotExpr `@@ ("&" @@)*`
}

// NotExpr is an atom under zero or more negations.
type NotExpr struct {
	Pos  lexer.Position
	Bang []string `@"!"*`
	Atom *Atom    `@@`
}

// Atom is either a bare variable name or a parenthesized sub-expression.
type Atom struct {
	Pos  lexer.Position
	Var  *string `@Ident`
	Sub  *Expr   `| "(" @@ ")"`
}

var exprParser = participle.MustBuild[Expr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// parseExpr parses src into an Expr AST. participle's error is returned as
// is; it carries the position the CLI's caret-style reporting needs.
func parseExpr(src string) (*Expr, error) {
	return exprParser.ParseString("", src)
}

// variables collects every distinct identifier mentioned in e, sorted so
// that variable indices are assigned deterministically regardless of where
// in the expression each name first appears.
func variables(e *Expr) []string {
	seen := map[string]bool{}
	walkExpr(e, func(name string) { seen[name] = true })
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func walkExpr(e *Expr, visit func(string)) {
	for _, x := range e.Or {
		walkXor(x, visit)
	}
}

func walkXor(x *XorExpr, visit func(string)) {
	for _, a := range x.Xor {
		walkAnd(a, visit)
	}
}

func walkAnd(a *AndExpr, visit func(string)) {
	for _, n := range a.And {
		walkNot(n, visit)
	}
}

func walkNot(n *NotExpr, visit func(string)) {
	walkAtom(n.Atom, visit)
}

func walkAtom(a *Atom, visit func(string)) {
	if a.Var != nil {
		visit(*a.Var)
	}
	if a.Sub != nil {
		walkExpr(a.Sub, visit)
	}
}

// builder evaluates an Expr AST into a Node of a three-valued BDD, using a
// fixed node budget and heuristic for every AndReduced/XorReduced call: a
// CLI invocation builds one formula once, so there is no reason to economize
// on the budget the way a hot path inside a solver would.
type builder struct {
	bdd     *rudd.BDD
	indices map[string]int
}

func newBuilder(b *rudd.BDD, names []string) *builder {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	return &builder{bdd: b, indices: idx}
}

func (bld *builder) build(e *Expr) (rudd.Node, error) {
	acc, err := bld.buildXor(e.Or[0])
	if err != nil {
		return nil, err
	}
	for _, rest := range e.Or[1:] {
		rhs, err := bld.buildXor(rest)
		if err != nil {
			return nil, err
		}
		acc, err = bld.bdd.OrReduced(acc, rhs, rudd.NoLimit, rudd.GreedyOneStep)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (bld *builder) buildXor(x *XorExpr) (rudd.Node, error) {
	acc, err := bld.buildAnd(x.Xor[0])
	if err != nil {
		return nil, err
	}
	for _, rest := range x.Xor[1:] {
		rhs, err := bld.buildAnd(rest)
		if err != nil {
			return nil, err
		}
		acc, err = bld.bdd.XorReduced(acc, rhs, rudd.NoLimit, rudd.GreedyOneStep)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (bld *builder) buildAnd(a *AndExpr) (rudd.Node, error) {
	acc, err := bld.buildNot(a.And[0])
	if err != nil {
		return nil, err
	}
	for _, rest := range a.And[1:] {
		rhs, err := bld.buildNot(rest)
		if err != nil {
			return nil, err
		}
		acc, err = bld.bdd.AndReduced(acc, rhs, rudd.NoLimit, rudd.GreedyOneStep)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (bld *builder) buildNot(n *NotExpr) (rudd.Node, error) {
	node, err := bld.buildAtom(n.Atom)
	if err != nil {
		return nil, err
	}
	if len(n.Bang)%2 == 1 {
		node = bld.bdd.Not(node)
	}
	return node, nil
}

func (bld *builder) buildAtom(a *Atom) (rudd.Node, error) {
	if a.Var != nil {
		i, ok := bld.indices[*a.Var]
		if !ok {
			return nil, fmt.Errorf("unknown variable %q", *a.Var)
		}
		return bld.bdd.Ithvar(i), nil
	}
	return bld.build(a.Sub)
}
