package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()

	assert.NoError(t, config.Validate())
	assert.NotContains(t, config.Alphabet, "v")
	assert.Len(t, config.Alphabet, 25)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(config *Config)
		field  string
	}{
		{"negative formulas", func(config *Config) { config.Formulas = -1 }, "Formulas"},
		{"zero minimum", func(config *Config) { config.MinLiterals = 0 }, "MinLiterals"},
		{"minimum above maximum", func(config *Config) { config.MinLiterals, config.MaxLiterals = 4, 3 }, "MaxLiterals"},
		{"negative NOT probability", func(config *Config) { config.NotProbability = -1 }, "NotProbability"},
		{"NOT probability above 100", func(config *Config) { config.NotProbability = 101 }, "NotProbability"},
		{"AND to OR probability above 100", func(config *Config) { config.AndToOrProbability = 101 }, "AndToOrProbability"},
		{"zero flush interval", func(config *Config) { config.FlushInterval = 0 }, "FlushInterval"},
		{"empty alphabet", func(config *Config) { config.Alphabet = "" }, "Alphabet"},
		{"OR operator in alphabet", func(config *Config) { config.Alphabet = "abv" }, "Alphabet"},
		{"uppercase letter", func(config *Config) { config.Alphabet = "aB" }, "Alphabet"},
		{"digit", func(config *Config) { config.Alphabet = "a1" }, "Alphabet"},
		{"duplicate letter", func(config *Config) { config.Alphabet = "abca" }, "Alphabet"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			//** Arrange
			config := DefaultConfig()
			test.modify(&config)

			//** Act
			err := config.Validate()

			//** Assert
			var configErr *ConfigError
			if assert.True(t, errors.As(err, &configErr)) {
				assert.Equal(t, test.field, configErr.Field)
			}
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	config := DefaultConfig()
	config.Formulas = 0
	config.MinLiterals, config.MaxLiterals = 1, 1
	config.NotProbability, config.AndToOrProbability = 0, 100
	config.FlushInterval = 1
	config.Alphabet = "x"

	assert.NoError(t, config.Validate())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "1000_1_500_50_50.txt", DefaultConfig().FileName())

	config := Config{Formulas: 5, MinLiterals: 1, MaxLiterals: 1, NotProbability: 0, AndToOrProbability: 100}
	assert.Equal(t, "5_1_1_0_100.txt", config.FileName())
}

func TestHeader(t *testing.T) {
	expected := "// Generated formulas: 1000\n" +
		"// Literal count range: 1-500\n" +
		"// NOT probability: 50%, AND to OR probability: 50%\n" +
		"\n"

	assert.Equal(t, expected, DefaultConfig().Header())
}
