package formula

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// Summary describes a finished generation run
type Summary struct {
	Formulas int
	Flushes  int
}

type Generator interface {
	// Writes the header and every planned formula into sink, flushing every FlushInterval formulas and once at the end
	Generate(sink Sink) (Summary, error)
}

type generatorImplementation struct {
	config      Config
	builder     Builder
	diagnostics io.Writer
}

// NewGenerator validates config and returns a Generator whose progress notices go to diagnostics
func NewGenerator(config Config, rng *rand.Rand, diagnostics io.Writer) (Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if diagnostics == nil {
		diagnostics = io.Discard
	}

	return &generatorImplementation{
		config:      config,
		builder:     NewBuilder(config, rng),
		diagnostics: diagnostics,
	}, nil
}

func (generator *generatorImplementation) Generate(sink Sink) (Summary, error) {
	summary := Summary{}
	plan := NewPlan(generator.config)

	if _, err := io.WriteString(sink, generator.config.Header()); err != nil {
		return summary, &IOError{Op: "write header to", Path: sinkPath(sink), Err: err}
	}

	for _, group := range plan {
		for range group.Formulas {
			formula := generator.builder.Build(group.Literals)
			if _, err := io.WriteString(sink, formula+"\n"); err != nil {
				return summary, &IOError{Op: "write formula to", Path: sinkPath(sink), Err: err}
			}

			summary.Formulas++
			if summary.Formulas%generator.config.FlushInterval == 0 {
				if err := generator.flush(sink, &summary); err != nil {
					return summary, err
				}
				fmt.Fprintf(generator.diagnostics, "Flushed after %d formulas...\n", summary.Formulas)
			}
		}
	}

	if err := generator.flush(sink, &summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func (generator *generatorImplementation) flush(sink Sink, summary *Summary) error {
	if err := sink.Flush(); err != nil {
		return &IOError{Op: "flush", Path: sinkPath(sink), Err: err}
	}
	summary.Flushes++
	return nil
}

func sinkPath(sink Sink) string {
	if named, ok := sink.(interface{ Path() string }); ok {
		return named.Path()
	}
	return "output"
}
