package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/advisories/pkg/logging"
	"github.com/limaJavier/advisories/pkg/model"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const MB float32 = 1024 * 1024

type TestMetadata struct {
	Students         int
	Advisories       int
	TeachersPerGroup int
	Seed             uint64
}

type BenchmarkResult struct {
	Test TestMetadata
	// Median over the repetitions
	Duration time.Duration
	// Heap allocated by a single run
	Memory          float32
	WithTeacher     int
	ContinuityBound int
	Conflicts       int
	Verified        bool
}

func main() {
	var (
		students   string
		advisories string
		repeat     int
		seed       uint64
		outFile    string
	)

	command := &cobra.Command{
		Use:          "benchmark",
		Short:        "Time advisory generation over synthetic populations and write the results as CSV",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			studentCounts, err := parseSizes(students)
			if err != nil {
				return err
			}
			advisoryCounts, err := parseSizes(advisories)
			if err != nil {
				return err
			}

			logger := logging.NewSlogDefault()
			tests := getTests(studentCounts, advisoryCounts, seed)
			results := make([]BenchmarkResult, 0, len(tests))
			for _, test := range tests {
				logger.Info("benchmarking", "students", test.Students, "advisories", test.Advisories, "repeat", repeat)

				result, err := measure(test, repeat)
				if err != nil {
					return err
				}
				if !result.Verified {
					logger.Warn("advisories failed verification", "students", test.Students, "advisories", test.Advisories)
				}
				results = append(results, result)
			}

			return toCsv(outFile, results)
		},
	}

	flags := command.Flags()
	flags.StringVar(&students, "students", "100,500,1000", "comma separated population sizes")
	flags.StringVar(&advisories, "advisories", "5,20", "comma separated advisory counts")
	flags.IntVar(&repeat, "repeat", 5, "runs per population; the median duration is reported")
	flags.Uint64Var(&seed, "seed", 1, "seed of the synthetic populations")
	flags.StringVar(&outFile, "out", "benchmark_results.csv", "CSV file the results are written to")

	if err := command.Execute(); err != nil {
		log.Fatal(err)
	}
}

// parseSizes reads a comma separated list of positive integers
func parseSizes(value string) ([]int, error) {
	sizes := make([]int, 0)
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("%q is not a positive integer", field)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", value)
	}
	return sizes, nil
}

func getTests(studentCounts, advisoryCounts []int, seed uint64) []TestMetadata {
	return lo.FlatMap(studentCounts, func(students int, _ int) []TestMetadata {
		return lo.Map(advisoryCounts, func(advisories int, _ int) TestMetadata {
			return TestMetadata{
				Students:         students,
				Advisories:       advisories,
				TeachersPerGroup: 2,
				Seed:             seed,
			}
		})
	})
}

func measure(test TestMetadata, repeat int) (BenchmarkResult, error) {
	groupings := model.GenerateTeacherGroupings(test.Advisories, test.TeachersPerGroup)
	students := model.GenerateStudents(
		rand.New(rand.NewPCG(test.Seed, uint64(test.Students))),
		test.Students,
		4,
		model.AllTeachers(groupings),
	)
	settings := model.Settings{
		Weights:          model.DefaultWeights(),
		NumAdvisories:    test.Advisories,
		TeacherGroupings: groupings,
	}
	allocator := model.NewGreedyAllocator(logging.NewNop())

	var (
		organization model.Organization
		durations    = make([]time.Duration, 0, repeat)
		memory       float32
	)
	for range max(repeat, 1) {
		var before, after runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&before)

		start := time.Now()
		generated, err := allocator.Generate(settings, students)
		elapsed := time.Since(start)
		if err != nil {
			return BenchmarkResult{}, fmt.Errorf("generating %d students into %d advisories: %w", test.Students, test.Advisories, err)
		}

		runtime.ReadMemStats(&after)
		organization = generated
		durations = append(durations, elapsed)
		memory = float32(after.TotalAlloc-before.TotalAlloc) / MB
	}

	bound, err := model.ContinuityBound(settings, students)
	if err != nil {
		return BenchmarkResult{}, err
	}
	summary := model.Summarize(organization)

	return BenchmarkResult{
		Test:            test,
		Duration:        median(durations),
		Memory:          memory,
		WithTeacher:     summary.WithTeacher,
		ContinuityBound: bound,
		Conflicts:       summary.Conflicts,
		Verified:        allocator.Verify(organization, settings, students),
	}, nil
}

func median(durations []time.Duration) time.Duration {
	sorted := slices.Clone(durations)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

func toCsv(outFile string, results []BenchmarkResult) error {
	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writeResults(writer, results); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func writeResults(writer *csv.Writer, results []BenchmarkResult) error {
	header := []string{"Students", "Advisories", "TeachersPerGroup", "Seed", "Duration(us)", "Memory(MB)", "WithTeacher", "ContinuityBound", "Conflicts", "Verified"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Test.Students),
			fmt.Sprintf("%d", result.Test.Advisories),
			fmt.Sprintf("%d", result.Test.TeachersPerGroup),
			fmt.Sprintf("%d", result.Test.Seed),
			fmt.Sprintf("%d", result.Duration.Microseconds()),
			fmt.Sprintf("%.3f", result.Memory),
			fmt.Sprintf("%d", result.WithTeacher),
			fmt.Sprintf("%d", result.ContinuityBound),
			fmt.Sprintf("%d", result.Conflicts),
			fmt.Sprintf("%v", result.Verified),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}
	return nil
}
