package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Formula is a CNF formula as read from a DIMACS file.
type Formula struct {
	NumVars int
	Clauses [][]int
}

// ParseDIMACS reads a DIMACS CNF document:
//
//	c comment
//	p cnf <vars> <clauses>
//	1 -3 0
//	2 3 -1 0
//
// Clauses may span lines and several clauses may share one. A line starting
// with '%' ends the input (SATLIB convention). The number of clauses must
// match the header; literals are validated by New, not here.
func ParseDIMACS(r io.Reader) (Formula, error) {
	var (
		f        Formula
		declared = -1
		clause   []int
		lineNo   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if line[0] == '%' {
			break
		}
		words := strings.Fields(line)
		if words[0] == "p" {
			if declared >= 0 {
				return Formula{}, fmt.Errorf("%w: line %d: second problem line", ErrMalformedDIMACS, lineNo)
			}
			if len(words) != 4 || words[1] != "cnf" {
				return Formula{}, fmt.Errorf("%w: line %d: want \"p cnf <vars> <clauses>\"", ErrMalformedDIMACS, lineNo)
			}
			vars, err1 := strconv.Atoi(words[2])
			count, err2 := strconv.Atoi(words[3])
			if err1 != nil || err2 != nil || vars < 0 || count < 0 {
				return Formula{}, fmt.Errorf("%w: line %d: bad problem sizes", ErrMalformedDIMACS, lineNo)
			}
			f.NumVars, declared = vars, count
			f.Clauses = make([][]int, 0, count)
			continue
		}
		if declared < 0 {
			return Formula{}, fmt.Errorf("%w: line %d: clause before problem line", ErrMalformedDIMACS, lineNo)
		}
		for _, w := range words {
			lit, err := strconv.Atoi(w)
			if err != nil {
				return Formula{}, fmt.Errorf("%w: line %d: %v", ErrMalformedDIMACS, lineNo, err)
			}
			if lit != 0 {
				clause = append(clause, lit)
				continue
			}
			if len(f.Clauses) == declared {
				return Formula{}, fmt.Errorf("%w: line %d: more than %d clauses", ErrMalformedDIMACS, lineNo, declared)
			}
			f.Clauses = append(f.Clauses, clause)
			clause = nil
		}
	}
	if err := sc.Err(); err != nil {
		return Formula{}, fmt.Errorf("%w: %v", ErrMalformedDIMACS, err)
	}
	switch {
	case declared < 0:
		return Formula{}, fmt.Errorf("%w: missing problem line", ErrMalformedDIMACS)
	case len(clause) > 0:
		return Formula{}, fmt.Errorf("%w: last clause not terminated by 0", ErrMalformedDIMACS)
	case len(f.Clauses) != declared:
		return Formula{}, fmt.Errorf("%w: %d clauses, header declares %d", ErrMalformedDIMACS, len(f.Clauses), declared)
	}

	return f, nil
}

// Root returns the search root of f.
func (f Formula) Root() (*Node, error) { return New(f.NumVars, f.Clauses) }
