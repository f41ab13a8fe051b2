package formula

import "math/rand/v2"

// Builder produces one random formula at a time. All draws consume the same random source,
// so a fixed seed reproduces the same sequence of formulas
type Builder interface {
	// Returns the textual formula, e.g. "(-a v b) ^ (c)!3"
	Build(literals int) string
	// Returns the structured formula. literals must be at least 1
	BuildClauses(literals int) Clauses
}

type builderImplementation struct {
	config Config
	rng    *rand.Rand
}

func NewBuilder(config Config, rng *rand.Rand) Builder {
	return &builderImplementation{config: config, rng: rng}
}

func (builder *builderImplementation) Build(literals int) string {
	return builder.BuildClauses(literals).String()
}

func (builder *builderImplementation) BuildClauses(literals int) Clauses {
	clauses := Clauses{make([]Literal, 0, 1)}
	for i := range literals {
		literal := Literal{}
		literal.Negated = builder.probabilityDraw() <= builder.config.NotProbability
		literal.Symbol = builder.config.Alphabet[builder.literalDraw()]

		last := len(clauses) - 1
		clauses[last] = append(clauses[last], literal)

		if i+1 < literals && builder.probabilityDraw() > builder.config.AndToOrProbability {
			clauses = append(clauses, make([]Literal, 0, 1)) // Start a new AND group
		}
	}
	return clauses
}

// Uniform over [1, 100]
func (builder *builderImplementation) probabilityDraw() int {
	return 1 + builder.rng.IntN(maxPercentage)
}

// Uniform over the alphabet's indices
func (builder *builderImplementation) literalDraw() int {
	return builder.rng.IntN(len(builder.config.Alphabet))
}
