package sat

import (
	"math/rand/v2"
	"testing"

	"github.com/limaJavier/formulae/pkg/formula"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromClauses(t *testing.T) {
	//** Arrange
	clauses := formula.Clauses{
		{{Symbol: 'a', Negated: true}, {Symbol: 'c'}},
		{{Symbol: 'b'}, {Symbol: 'a'}},
	}

	//** Act
	satInstance, err := FromClauses("abc", clauses)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, uint64(3), satInstance.Variables)
	assert.Equal(t, [][]int64{{-1, 3}, {2, 1}}, satInstance.Clauses)
	assert.Equal(t, []int64{1, 3, 2}, satInstance.UsedVariables())
	assert.Equal(t, "p cnf 3 2\n-1 3 0\n2 1 0\n", satInstance.ToDIMACS())
}

func TestFromClausesUnknownSymbol(t *testing.T) {
	_, err := FromClauses("ab", formula.Clauses{{{Symbol: 'z'}}})

	assert.Error(t, err)
}

func TestFromGeneratedFormula(t *testing.T) {
	config := formula.DefaultConfig()
	builder := formula.NewBuilder(config, rand.New(rand.NewPCG(21, 22)))

	for literals := 1; literals <= 40; literals++ {
		clauses := builder.BuildClauses(literals)

		satInstance, err := FromClauses(config.Alphabet, clauses)

		require.NoError(t, err)
		assert.Len(t, satInstance.Clauses, len(clauses))
		for i, clause := range satInstance.Clauses {
			assert.Len(t, clause, len(clauses[i]))
			for j, literal := range clause {
				assert.Equal(t, clauses[i][j].Negated, literal < 0)
				assert.NotZero(t, literal)
			}
		}
	}
}
