// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"mvdan.cc/sh/v3/syntax"
)

// Parse reads a light script from r. name is used in error messages only.
func Parse(r io.Reader, name string) ([]Op, error) {
	file, err := syntax.NewParser().Parse(r, name)
	if err != nil {
		var perr syntax.ParseError
		if errors.As(err, &perr) {
			return nil, &SyntaxError{Name: name, Line: perr.Pos.Line(), Reason: perr.Text}
		}
		return nil, &SyntaxError{Name: name, Reason: err.Error()}
	}

	ops := make([]Op, 0, len(file.Stmts))
	for _, stmt := range file.Stmts {
		op, err := stmtOp(stmt)
		if err != nil {
			return nil, &SyntaxError{Name: name, Line: stmt.Pos().Line(), Reason: err.Error()}
		}
		op.Line = stmt.Pos().Line()
		ops = append(ops, op)
	}
	return ops, nil
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) ([]Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Parse(f, path)
}

// stmtOp accepts only a bare simple command whose words are all literals.
func stmtOp(stmt *syntax.Stmt) (Op, error) {
	switch {
	case stmt.Negated:
		return Op{}, errors.New("negation is not supported")
	case stmt.Background:
		return Op{}, errors.New("background execution is not supported")
	case len(stmt.Redirs) > 0:
		return Op{}, errors.New("redirections are not supported")
	}

	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok {
		return Op{}, fmt.Errorf("only simple operations are supported, found %s", describeCommand(stmt.Cmd))
	}
	if len(call.Assigns) > 0 {
		return Op{}, errors.New("variable assignments are not supported")
	}

	words := make([]string, 0, len(call.Args))
	for _, w := range call.Args {
		lit := w.Lit()
		if lit == "" {
			return Op{}, errors.New("expansions and quoting are not supported")
		}
		words = append(words, lit)
	}

	op, n, err := parseOp(words)
	if err != nil {
		return Op{}, err
	}
	if n != len(words) {
		return Op{}, fmt.Errorf("unexpected arguments after %q", op)
	}
	return op, nil
}

func describeCommand(cmd syntax.Command) string {
	switch cmd.(type) {
	case *syntax.BinaryCmd:
		return "a pipeline or list"
	case *syntax.Subshell:
		return "a subshell"
	case *syntax.Block:
		return "a block"
	case *syntax.IfClause, *syntax.WhileClause, *syntax.ForClause, *syntax.CaseClause:
		return "a control structure"
	case *syntax.FuncDecl:
		return "a function declaration"
	default:
		return fmt.Sprintf("%T", cmd)
	}
}
