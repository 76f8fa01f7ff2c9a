package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"chess-core/bitmg"
	"chess-core/fenbridge"
	"chess-core/suite"
)

func main() {
	fen := flag.String("fen", fenbridge.StartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -suite is given)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	suiteFile := flag.String("suite", "", "YAML perft suite to verify; -depth caps the depths checked")
	legal := flag.Bool("legal", true, "Count legal leaves; false counts pseudo-legal leaves")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *suiteFile != "" {
		os.Exit(runSuite(logger, *suiteFile, *depth, !*legal))
	}

	if *depth <= 0 {
		logger.Error("-depth must be > 0")
		os.Exit(2)
	}

	pos, err := fenbridge.Decode(*fen)
	if err != nil {
		logger.Error("decode FEN", "fen", *fen, "err", err)
		os.Exit(2)
	}
	logger.Debug("position", "fen", fenbridge.Encode(pos), "hash", fmt.Sprintf("%016x", pos.Hash()))

	// Optional divide output
	if *divide {
		div := pos.PerftDivide(*depth)
		// Sort moves for stable output
		type kv struct {
			m bitmg.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		slices.SortFunc(arr, func(a, b kv) int { return strings.Compare(a.m.UCI(), b.m.UCI()) })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.UCI(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			logger.Error("creating cpuprofile", "err", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error("start cpu profile", "err", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	count := pos.Perft
	if !*legal {
		count = pos.PerftPseudo
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += count(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			logger.Error("creating memprofile", "err", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Error("write heap profile", "err", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// runSuite checks every case of a suite file and returns the exit status:
// 0 when all counts match, 1 on a mismatch, 2 when the file cannot be used.
func runSuite(logger *slog.Logger, filename string, maxDepth int, pseudo bool) int {
	s, err := suite.Load(filename)
	if err != nil {
		logger.Error("load suite", "err", err)
		return 2
	}
	start := time.Now()
	failed := 0
	for _, r := range s.Verify(maxDepth, pseudo) {
		fmt.Println(r)
		if !r.OK() {
			failed++
		}
	}
	logger.Info("suite done", "file", filename, "cases", len(s.Cases), "failed", failed, "elapsed", time.Since(start))
	if failed > 0 {
		return 1
	}
	return 0
}
