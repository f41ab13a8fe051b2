package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/limaJavier/formulae/pkg/formula"
	"github.com/limaJavier/formulae/pkg/sat"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

const (
	sampleSize         = 100
	KB                 = 1024
	MB         float32 = 1024 * 1024
)

type BenchmarkResult struct {
	Config          formula.Config
	Duration        int64 // Milliseconds
	Size            float32
	Flushes         int
	AverageClauses  float32
	AverageVariable float32
	Dimacs          int // Bytes of the DIMACS rendering of the sample
}

func main() {
	casesPtr := flag.String("cases", "", "Path to a JSON file holding a list of configurations; if empty, the built-in cases are used")
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	seedPtr := flag.Uint64("seed", 0, "Seed of the random source; if 0, a random seed is used")
	flag.Parse()

	cases := getCases()
	if *casesPtr != "" {
		var err error
		cases, err = casesFromJson(*casesPtr)
		if err != nil {
			log.Fatalf("cannot parse cases file: %v", err)
		}
	}

	seed := *seedPtr
	if seed == 0 {
		seed = rand.Uint64()
	}

	directory, err := os.MkdirTemp("", "formulae-benchmark-*")
	if err != nil {
		log.Fatalf("cannot create temporary directory: %v", err)
	}
	defer os.RemoveAll(directory)

	results := make([]BenchmarkResult, 0, len(cases))
	for _, config := range cases {
		fmt.Printf("Benchmarking %v\n", config.FileName())
		result, err := measure(config, seed, directory)
		if err != nil {
			log.Fatalf("an error occurred while benchmarking \"%v\": %v", config.FileName(), err)
		}
		results = append(results, result)
	}

	toCsv(*outPtr, results)
}

func getCases() []formula.Config {
	base := formula.DefaultConfig()
	withRange := func(formulas, minLiterals, maxLiterals int) formula.Config {
		config := base
		config.Formulas, config.MinLiterals, config.MaxLiterals = formulas, minLiterals, maxLiterals
		return config
	}

	return []formula.Config{
		withRange(1000, 1, 500),
		withRange(10000, 1, 50),
		withRange(100000, 1, 10),
		withRange(1000, 500, 1000),
	}
}

func casesFromJson(file string) ([]formula.Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var inputJson []map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, err
	}

	return decodeCases(inputJson)
}

// Fields missing from a raw case keep their default value
func decodeCases(rawCases []map[string]any) ([]formula.Config, error) {
	cases := make([]formula.Config, 0, len(rawCases))
	for i, rawCase := range rawCases {
		config := formula.DefaultConfig()
		if err := mapstructure.Decode(rawCase, &config); err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		cases = append(cases, config)
	}
	return cases, nil
}

func measure(config formula.Config, seed uint64, directory string) (BenchmarkResult, error) {
	generator, err := formula.NewGenerator(config, rand.New(rand.NewPCG(seed, seed)), nil)
	if err != nil {
		return BenchmarkResult{}, err
	}

	sink, err := formula.OpenOutput(directory, config)
	if err != nil {
		return BenchmarkResult{}, err
	}

	start := time.Now()
	summary, err := generator.Generate(sink)
	if err != nil {
		sink.Close()
		return BenchmarkResult{}, err
	}
	if err := sink.Close(); err != nil {
		return BenchmarkResult{}, err
	}
	duration := time.Since(start).Milliseconds()

	info, err := os.Stat(sink.Path())
	if err != nil {
		return BenchmarkResult{}, err
	}

	averageClauses, averageVariables, dimacs, err := sample(config, seed)
	if err != nil {
		return BenchmarkResult{}, err
	}

	return BenchmarkResult{
		Config:          config,
		Duration:        duration,
		Size:            float32(info.Size()) / MB,
		Flushes:         summary.Flushes,
		AverageClauses:  averageClauses,
		AverageVariable: averageVariables,
		Dimacs:          dimacs,
	}, nil
}

// sample builds sampleSize formulas of literal counts spread over the configured range and inspects their CNF
func sample(config formula.Config, seed uint64) (averageClauses, averageVariables float32, dimacs int, err error) {
	builder := formula.NewBuilder(config, rand.New(rand.NewPCG(seed, ^seed)))
	literalLengths := config.MaxLiterals - config.MinLiterals + 1

	instances := make([]sat.SAT, 0, sampleSize)
	for i := range sampleSize {
		clauses := builder.BuildClauses(config.MinLiterals + i%literalLengths)
		instance, err := sat.FromClauses(config.Alphabet, clauses)
		if err != nil {
			return 0, 0, 0, err
		}
		instances = append(instances, instance)
	}

	clauses := lo.SumBy(instances, func(instance sat.SAT) int { return len(instance.Clauses) })
	variables := lo.SumBy(instances, func(instance sat.SAT) int { return len(instance.UsedVariables()) })
	dimacs = lo.SumBy(instances, func(instance sat.SAT) int { return len(instance.ToDIMACS()) })
	return float32(clauses) / sampleSize, float32(variables) / sampleSize, dimacs, nil
}

func toCsv(file string, results []BenchmarkResult) {
	output, err := os.Create(file)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer output.Close()

	writer := csv.NewWriter(output)
	defer writer.Flush()

	if err := writer.Write(csvHeader()); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func csvHeader() []string {
	return []string{"Formulas", "Min Literals", "Max Literals", "NOT(%)", "AND to OR(%)", "Flush Interval", "Duration(ms)", "Size(MB)", "Flushes", "Avg Clauses", "Avg Variables", "DIMACS Sample(KB)"}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		fmt.Sprintf("%d", result.Config.Formulas),
		fmt.Sprintf("%d", result.Config.MinLiterals),
		fmt.Sprintf("%d", result.Config.MaxLiterals),
		fmt.Sprintf("%d", result.Config.NotProbability),
		fmt.Sprintf("%d", result.Config.AndToOrProbability),
		fmt.Sprintf("%d", result.Config.FlushInterval),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.3f", result.Size),
		fmt.Sprintf("%d", result.Flushes),
		fmt.Sprintf("%.2f", result.AverageClauses),
		fmt.Sprintf("%.2f", result.AverageVariable),
		fmt.Sprintf("%.1f", float32(result.Dimacs)/KB),
	}
}
