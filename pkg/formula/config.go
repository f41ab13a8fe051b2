package formula

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	orOperator    = " v "
	andOperator   = ") ^ ("
	negation      = '-'
	orSymbol      = 'v'
	countMarker   = '!'
	maxPercentage = 100
)

// Config holds every parameter of a generation run
type Config struct {
	Formulas           int    // Total number of formulas to generate
	MinLiterals        int    // Minimum number of literals per formula
	MaxLiterals        int    // Maximum number of literals per formula
	NotProbability     int    // Probability (in percent) that a literal is negated
	AndToOrProbability int    // Probability (in percent) that a separator is OR instead of a new AND group
	FlushInterval      int    // Number of formulas written between flushes
	Alphabet           string // Allowed literal characters
}

func DefaultConfig() Config {
	return Config{
		Formulas:           1000,
		MinLiterals:        1,
		MaxLiterals:        500,
		NotProbability:     50,
		AndToOrProbability: 50,
		FlushInterval:      100000,
		Alphabet:           "abcdefghijklmnopqrstuwxyz", // 'v' is reserved for the OR operator
	}
}

func (config Config) Validate() error {
	if config.Formulas < 0 {
		return &ConfigError{Field: "Formulas", Reason: fmt.Sprintf("must not be negative: %d", config.Formulas)}
	} else if config.MinLiterals < 1 {
		return &ConfigError{Field: "MinLiterals", Reason: fmt.Sprintf("must be at least 1: %d", config.MinLiterals)}
	} else if config.MinLiterals > config.MaxLiterals {
		return &ConfigError{Field: "MaxLiterals", Reason: fmt.Sprintf("must not be smaller than MinLiterals (%d): %d", config.MinLiterals, config.MaxLiterals)}
	} else if config.NotProbability < 0 || config.NotProbability > maxPercentage {
		return &ConfigError{Field: "NotProbability", Reason: fmt.Sprintf("must be between 0 and 100: %d", config.NotProbability)}
	} else if config.AndToOrProbability < 0 || config.AndToOrProbability > maxPercentage {
		return &ConfigError{Field: "AndToOrProbability", Reason: fmt.Sprintf("must be between 0 and 100: %d", config.AndToOrProbability)}
	} else if config.FlushInterval < 1 {
		return &ConfigError{Field: "FlushInterval", Reason: fmt.Sprintf("must be at least 1: %d", config.FlushInterval)}
	}
	return validateAlphabet(config.Alphabet)
}

func validateAlphabet(alphabet string) error {
	if len(alphabet) == 0 {
		return &ConfigError{Field: "Alphabet", Reason: "must not be empty"}
	}

	symbols := []byte(alphabet)
	if invalid := lo.Filter(symbols, func(symbol byte, _ int) bool {
		return symbol < 'a' || symbol > 'z'
	}); len(invalid) > 0 {
		return &ConfigError{Field: "Alphabet", Reason: fmt.Sprintf("only lowercase letters are allowed: %q", invalid)}
	} else if lo.Contains(symbols, orSymbol) {
		return &ConfigError{Field: "Alphabet", Reason: fmt.Sprintf("%q is reserved for the OR operator", orSymbol)}
	} else if duplicates := lo.FindDuplicates(symbols); len(duplicates) > 0 {
		return &ConfigError{Field: "Alphabet", Reason: fmt.Sprintf("duplicate characters: %q", duplicates)}
	}
	return nil
}

// FileName encodes the numeric parameters, e.g. "1000_1_500_50_50.txt"
func (config Config) FileName() string {
	return fmt.Sprintf("%d_%d_%d_%d_%d.txt",
		config.Formulas,
		config.MinLiterals,
		config.MaxLiterals,
		config.NotProbability,
		config.AndToOrProbability,
	)
}

// Header returns the comment block written before the formulas, blank line included
func (config Config) Header() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "// Generated formulas: %d\n", config.Formulas)
	fmt.Fprintf(&builder, "// Literal count range: %d-%d\n", config.MinLiterals, config.MaxLiterals)
	fmt.Fprintf(&builder, "// NOT probability: %d%%, AND to OR probability: %d%%\n\n", config.NotProbability, config.AndToOrProbability)
	return builder.String()
}
