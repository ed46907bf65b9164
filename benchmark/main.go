// Package main provides a performance benchmarking tool for the Trustgate CLI.
// It measures evaluation times across synthetic datasets of increasing size,
// running each command multiple times, treating the first successful run as cold
// and averaging the rest as warm, generating CSV output for performance analysis.
//
// Prerequisites:
// - trustgate binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic datasets are generated
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	RowSizes map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir: workDir,
		Timeout: 5 * time.Minute,
		Runs:    4,
		RowSizes: map[string]int{
			"tiny":   1000,
			"small":  10000,
			"medium": 100000,
			"large":  1000000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the trustgate binary and work dir exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("trustgate"); err != nil {
		return fmt.Errorf("trustgate binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}
	return nil
}

// generateDataset writes a synthetic orders CSV with the requested row count.
func generateDataset(path string, rows int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"order_id", "revenue", "quantity", "region", "event_date"}); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(42))
	regions := []string{"north", "south", "east", "west"}
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= rows; i++ {
		day := base.AddDate(0, 0, i%400).Format("2006-01-02")
		record := []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.2f", 20+rng.Float64()*480),
			fmt.Sprintf("%d", 1+rng.Intn(9)),
			regions[rng.Intn(len(regions))],
			day,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured dataset sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d dataset sizes, %v timeout, %d runs each\n",
		len(config.RowSizes), config.Timeout, config.Runs)

	for _, name := range []string{"tiny", "small", "medium", "large"} {
		rows := config.RowSizes[name]
		datasetPath := filepath.Join(config.WorkDir, fmt.Sprintf("orders_%s.csv", name))

		fmt.Printf("Generating %s dataset (%d rows)\n", name, rows)
		if err := generateDataset(datasetPath, rows); err != nil {
			fmt.Printf("Warning: failed to generate %s: %v\n", name, err)
			continue
		}

		for _, command := range []string{"evaluate", "report", "check"} {
			result := runBenchmarkSuite(config, name, datasetPath, command)
			results = append(results, result)
		}
	}

	return results
}

// runBenchmarkSuite runs the cold/warm benchmark for one command on one dataset
func runBenchmarkSuite(config BenchmarkConfig, dataset, datasetPath, command string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, dataset)

	coldTime, warmTimes := runBenchmark(config, datasetPath, command)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:  dataset,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a trustgate command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, datasetPath, command string) (coldTime float64, warmTimes []float64) {
	args := []string{command, datasetPath}
	if command == "check" {
		args = append(args, "--min-score", "0.1")
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("trustgate", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	switch command {
	case "report":
		return strings.Contains(outputStr, "End of Executive Summary")
	case "check":
		return strings.Contains(outputStr, "passed the trust gate")
	default:
		return strings.Contains(outputStr, "Evaluation completed in")
	}
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/trustgate_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "evaluate", "Evaluate:")
	printCommandSummary(results, "report", "Report:")
	printCommandSummary(results, "check", "Check:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-8s: Cold: %s, Warm: %s\n", result.Dataset, result.ColdTime, result.WarmTime)
		}
	}
}
