// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command ruddcli parses a Boolean expression over named variables, builds
// the corresponding three-valued BDD, and prints its truth table, using ⊥
// wherever the expression's value is left undefined by the assignment under
// test. It exists to exercise the bounded apply engine end to end from a
// plain-text surface, the way a one-off query tool would.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	rudd "github.com/matejpavlik/cudd-3val"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ruddcli '<expr>'  (variables: identifiers; ops: ! & | ^; e.g. \"x0 & !x1 | x2\")")
		os.Exit(1)
	}
	src := strings.Join(os.Args[1:], " ")

	expr, err := parseExpr(src)
	if err != nil {
		reportParseError(src, err)
		os.Exit(1)
	}

	names := variables(expr)
	if len(names) == 0 {
		color.Red("expression has no variables")
		os.Exit(1)
	}

	bdd, err := rudd.New(len(names))
	if err != nil {
		color.Red("cannot allocate BDD: %s", err)
		os.Exit(1)
	}

	f, err := newBuilder(bdd, names).build(expr)
	if err != nil {
		color.Red("cannot build expression: %s", err)
		os.Exit(1)
	}

	printTable(bdd, f, names)
}

// printTable enumerates every total 0/1 assignment of names and prints the
// expression's three-valued result for each, color-coded: green for 1, red
// for 0, yellow for ⊥.
func printTable(bdd *rudd.BDD, f rudd.Node, names []string) {
	fmt.Println(strings.Join(names, " "), "|", "result")
	assignment := make([]int, len(names))
	total := 1 << len(names)
	for row := 0; row < total; row++ {
		for i := range assignment {
			assignment[i] = (row >> (len(names) - 1 - i)) & 1
		}
		v := bdd.Eval(f, assignment)
		cells := make([]string, len(assignment))
		for i, a := range assignment {
			cells[i] = fmt.Sprintf("%d", a)
		}
		fmt.Print(strings.Join(cells, " "), " | ")
		switch v {
		case 1:
			color.Green("1")
		case 0:
			color.Red("0")
		default:
			color.Yellow("⊥")
		}
	}
}

// reportParseError prints a caret-style parse error message, in the spirit
// of this codebase's other participle-backed front ends.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("unexpected error: %s", err)
		return
	}
	pos := pe.Position()
	color.Red("syntax error at column %d:", pos.Column)
	fmt.Println(src)
	fmt.Println(strings.Repeat(" ", max(pos.Column-1, 0)) + "^")
	fmt.Printf("-> %s\n", pe.Message())
}
