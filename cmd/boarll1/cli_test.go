package main

import (
	"errors"
	"testing"

	"github.com/npillmayer/boar/ll1"
	"github.com/npillmayer/boar/pipeline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTableData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.cli")
	defer teardown()
	//
	g, err := ll1.LoadFromFile("../../ll1/testdata/expr.bnf")
	if err != nil {
		t.Fatal(err)
	}
	table, err := ll1.NewTable(g)
	if err != nil {
		t.Fatal(err)
	}
	data := tableData(table)
	if len(data) != 6 {
		t.Fatalf("expected header and 5 rows, have %d rows", len(data))
	}
	if len(data[0]) != 7 || data[0][0] != "M" {
		t.Errorf("expected header M plus 6 lookaheads, have %v", data[0])
	}
	sets := setsTableData(table.Analysis())
	if len(sets) != 6 || sets[1][0] != "<E>" {
		t.Errorf("unexpected sets table %v", sets)
	}
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boar.cli")
	defer teardown()
	//
	engine, err := pipeline.LoadEngine("")
	if err != nil {
		t.Fatal(err)
	}
	intp := &Intp{engine: engine}
	if quit, err := intp.Eval("numa x <- 3;"); quit || err != nil {
		t.Errorf("expected statement to compile, have %v", err)
	}
	if _, err := intp.Eval(":tree"); err != nil {
		t.Errorf("expected :tree to show the tree of the statement, have %v", err)
	}
	if _, err := intp.Eval(":terminals numa <- ;"); err == nil {
		t.Errorf("expected declaration without identifier to be rejected")
	}
	if _, err := intp.Eval(":tree"); !errors.Is(err, errNoTree) {
		t.Errorf("expected no tree after a rejected input, have %v", err)
	}
	if _, err := intp.Eval(":frobnicate"); !errors.Is(err, errUnknownCommand) {
		t.Errorf("expected unknown command, have %v", err)
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to end the session")
	}
}
