// kicadbench - parse strategy benchmark runner
//
// Compares the owning and borrowing parse strategies on real symbol
// library files:
//   - wall time per parse
//   - allocated bytes and allocation count per parse
//
// Output: a per-file table plus totals.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/edacore/kicadfmt/kicad"
	"github.com/edacore/kicadfmt/sexpr"
)

type caseResult struct {
	Name         string
	Bytes        int
	Symbols      int
	OwningNs     int64
	BorrowNs     int64
	OwningAllocs uint64
	BorrowAllocs uint64
}

func main() {
	iterations := flag.Int("n", 200, "parse iterations per file")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	memProfile := flag.Bool("memprofile", false, "write a heap profile to the working directory")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: kicadbench [-n iterations] FILE...")
		os.Exit(2)
	}

	switch {
	case *cpuProfile:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case *memProfile:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	var results []caseResult
	for _, path := range files {
		result, err := benchFile(path, *iterations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", path, err)
			continue
		}
		results = append(results, result)
	}
	if len(results) == 0 {
		os.Exit(1)
	}

	printTable(results, *iterations)
}

func benchFile(path string, iterations int) (caseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return caseResult{}, err
	}
	text := string(data)

	doc, err := sexpr.Parse(text)
	if err != nil {
		return caseResult{}, err
	}
	lib, err := kicad.ParseSymbolLibrary(doc)
	if err != nil {
		return caseResult{}, err
	}

	result := caseResult{
		Name:    path,
		Bytes:   len(data),
		Symbols: len(lib.Symbols),
	}

	result.OwningNs, result.OwningAllocs = measure(iterations, func() error {
		_, err := kicad.ParseSymbolLibrary(doc)
		return err
	})
	result.BorrowNs, result.BorrowAllocs = measure(iterations, func() error {
		_, err := kicad.ParseSymbolLibraryFast(doc)
		return err
	})
	return result, nil
}

// measure runs fn repeatedly and returns mean wall time and mean allocation
// count per run.
func measure(iterations int, fn func() error) (int64, uint64) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := fn(); err != nil {
			panic(err)
		}
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	return elapsed.Nanoseconds() / int64(iterations),
		(after.Mallocs - before.Mallocs) / uint64(iterations)
}

func printTable(results []caseResult, iterations int) {
	fmt.Printf("iterations per file: %d\n\n", iterations)
	fmt.Printf("%-40s %8s %8s %12s %12s %10s %10s %8s\n",
		"file", "bytes", "symbols", "owning", "borrowing", "own alloc", "bor alloc", "speedup")

	for _, r := range results {
		speedup := 0.0
		if r.BorrowNs > 0 {
			speedup = float64(r.OwningNs) / float64(r.BorrowNs)
		}
		fmt.Printf("%-40s %8d %8d %10dns %10dns %10d %10d %7.2fx\n",
			r.Name, r.Bytes, r.Symbols, r.OwningNs, r.BorrowNs,
			r.OwningAllocs, r.BorrowAllocs, speedup)
	}
}
