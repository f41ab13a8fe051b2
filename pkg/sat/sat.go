package sat

import (
	"fmt"
	"strings"

	"github.com/limaJavier/formulae/pkg/formula"
	"github.com/samber/lo"
)

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// FromClauses maps a generated formula into CNF. The variable of a symbol is its 1-based index in alphabet
// and a negated literal gets a negative sign
func FromClauses(alphabet string, clauses formula.Clauses) (SAT, error) {
	satInstance := SAT{
		Variables: uint64(len(alphabet)),
		Clauses:   make([][]int64, 0, len(clauses)),
	}

	for _, clause := range clauses {
		satClause := make([]int64, 0, len(clause))
		for _, literal := range clause {
			index := strings.IndexByte(alphabet, literal.Symbol)
			if index < 0 {
				return SAT{}, fmt.Errorf("symbol %q is not part of the alphabet %q", literal.Symbol, alphabet)
			}

			variable := int64(index + 1)
			if literal.Negated {
				variable = -variable
			}
			satClause = append(satClause, variable)
		}
		satInstance.Clauses = append(satInstance.Clauses, satClause)
	}

	return satInstance, nil
}

// UsedVariables returns the distinct variables appearing in the instance, in order of first appearance
func (s SAT) UsedVariables() []int64 {
	return lo.Uniq(lo.Map(lo.Flatten(s.Clauses), func(literal int64, _ int) int64 {
		if literal < 0 {
			return -literal
		}
		return literal
	}))
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
