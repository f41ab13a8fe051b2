package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/limaJavier/formulae/pkg/formula"
)

// Directory where the Formulae directory is created
const outputParent = ".."

func main() {
	config := formula.DefaultConfig()

	// Initialize engines
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	generator, err := formula.NewGenerator(config, rng, os.Stdout)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	sink, err := formula.OpenOutput(outputParent, config)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	// Generate formulas
	summary, err := generator.Generate(sink)
	if err != nil {
		sink.Close()
		log.Fatalf("Error: %v", err)
	}
	if err := sink.Close(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Println("\nGeneration completed.")
	fmt.Printf("Total formulas: %v\n", summary.Formulas)
	fmt.Printf("Output file: %v\n", sink.Path())
}
