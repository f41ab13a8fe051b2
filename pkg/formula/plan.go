package formula

import "github.com/samber/lo"

// Group is the number of formulas to generate with a given literal count
type Group struct {
	Literals int
	Formulas int
}

// Plan lists the groups in ascending literal count
type Plan []Group

// NewPlan distributes config.Formulas as evenly as possible over [MinLiterals, MaxLiterals].
// The remainder goes to the smallest literal counts first, one extra formula each.
// The config is expected to be valid
func NewPlan(config Config) Plan {
	literalLengths := config.MaxLiterals - config.MinLiterals + 1
	formulasPerGroup := config.Formulas / literalLengths
	remainder := config.Formulas % literalLengths

	plan := make(Plan, 0, literalLengths)
	for i := range literalLengths {
		formulas := formulasPerGroup
		if i < remainder {
			formulas++
		}
		plan = append(plan, Group{Literals: config.MinLiterals + i, Formulas: formulas})
	}
	return plan
}

func (plan Plan) Total() int {
	return lo.SumBy(plan, func(group Group) int { return group.Formulas })
}
