package formula

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type Literal struct {
	Symbol  byte
	Negated bool
}

// Clauses is the structured form of a formula: OR-joined literals inside each group, AND-joined groups
type Clauses [][]Literal

func (clauses Clauses) Literals() int {
	return lo.SumBy(clauses, func(clause []Literal) int { return len(clause) })
}

// String renders the clauses as "(-a v b) ^ (c)!3"
func (clauses Clauses) String() string {
	literals := clauses.Literals()

	var builder strings.Builder
	builder.Grow(literals * 6)
	builder.WriteByte('(')
	for i, clause := range clauses {
		if i > 0 {
			builder.WriteString(andOperator)
		}
		for j, literal := range clause {
			if j > 0 {
				builder.WriteString(orOperator)
			}
			if literal.Negated {
				builder.WriteByte(negation)
			}
			builder.WriteByte(literal.Symbol)
		}
	}
	builder.WriteByte(')')
	builder.WriteByte(countMarker)
	builder.WriteString(strconv.Itoa(literals))
	return builder.String()
}
