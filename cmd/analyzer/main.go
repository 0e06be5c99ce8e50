package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/kaboom/internal/common/clock"
	"github.com/KirkDiggler/kaboom/internal/common/uuid"
	"github.com/KirkDiggler/kaboom/internal/models"
	"github.com/KirkDiggler/kaboom/internal/repositories/sweep"
	"github.com/KirkDiggler/kaboom/internal/services/analysis"
)

// Standard analysis grid
var (
	dieSizes = []int{4, 6, 8, 10, 12}
	targets  = []int{4, 6, 8, 10}
)

func main() {
	fixedDie := flag.Int("fixed-die", 6, "faces on the fixed first die for the two-dice analysis")
	flag.Parse()

	ctx := context.Background()

	// The analyzer keeps its results in process memory; nothing to
	// connect to
	analysisSvc, err := analysis.New(&analysis.Config{
		SweepRepo:     sweep.NewMemory(),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create analysis service: %v", err)
	}

	fmt.Println("EXPLODING DICE PROBABILITY ANALYZER")
	fmt.Println(strings.Repeat("=", 70))

	// Part 1: single-die analysis
	fmt.Println("\nPART 1: SINGLE EXPLODING DIE")
	fmt.Println(strings.Repeat("-", 70))

	fmt.Println("\nExpected values (with infinite explosions):")
	for _, size := range dieSizes {
		ev, err := analysisSvc.QueryExpectedValue(ctx, &analysis.QueryExpectedValueInput{
			DieSize: size,
		})
		if err != nil {
			log.Fatalf("Failed to compute expected value for d%d: %v", size, err)
		}
		fmt.Printf("  d%-3d E[X] = %.3f\n", size, ev.ExpectedValue)
	}

	single, err := analysisSvc.SweepSingle(ctx, &analysis.SweepSingleInput{
		DieSizes: dieSizes,
		Targets:  targets,
	})
	if err != nil {
		log.Fatalf("Failed to run single-die sweep: %v", err)
	}

	fmt.Println("\nProbability of reaching at least the target:")
	printSweepTable(single.Sweep)

	// Part 2: two-dice maximum analysis
	fmt.Printf("\nPART 2: TWO-DICE MAXIMUM, max(d%d, dX)\n", *fixedDie)
	fmt.Println(strings.Repeat("-", 70))

	maxSweep, err := analysisSvc.SweepMax(ctx, &analysis.SweepMaxInput{
		FixedDieSize: *fixedDie,
		DieSizes:     dieSizes,
		Targets:      targets,
	})
	if err != nil {
		log.Fatalf("Failed to run two-dice sweep: %v", err)
	}

	fmt.Println("\nProbability the higher die reaches at least the target:")
	printSweepTable(maxSweep.Sweep)

	fmt.Println("\nMarginal improvement from upgrading the second die:")
	printMarginalImprovements(maxSweep.Sweep)
}

// printSweepTable prints a sweep's cells as a table, one row per die size
// and one column per target
func printSweepTable(s *models.Sweep) {
	fmt.Printf("\n%-10s", "Die")
	for _, target := range s.Targets {
		fmt.Printf(" | %7s", fmt.Sprintf(">=%d", target))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", 10))
	for range s.Targets {
		fmt.Print("-+-" + strings.Repeat("-", 7))
	}
	fmt.Println()

	for _, dieSize := range s.DieSizes {
		label := fmt.Sprintf("d%d", dieSize)
		if s.Kind == models.SweepKindMax {
			label = fmt.Sprintf("d%d+d%d", s.FixedDieSize, dieSize)
		}
		fmt.Printf("%-10s", label)

		for _, target := range s.Targets {
			prob, ok := s.Cell(dieSize, target)
			if !ok {
				fmt.Printf(" | %7s", "-")
				continue
			}
			fmt.Printf(" | %6.2f%%", prob*100)
		}
		fmt.Println()
	}

	if s.Truncated {
		fmt.Println("\nwarning: some cells hit the depth ceiling and under-count their probability")
	}
}

// printMarginalImprovements prints how much each die-size upgrade adds,
// in percentage points, per target
func printMarginalImprovements(s *models.Sweep) {
	for _, target := range s.Targets {
		fmt.Printf("\nTarget >=%d:\n", target)

		for i := 1; i < len(s.DieSizes); i++ {
			prevSize := s.DieSizes[i-1]
			currSize := s.DieSizes[i]

			prevProb, ok := s.Cell(prevSize, target)
			if !ok {
				continue
			}
			currProb, ok := s.Cell(currSize, target)
			if !ok {
				continue
			}

			improvement := (currProb - prevProb) * 100
			fmt.Printf("  d%d -> d%d: %+6.2f percentage points\n", prevSize, currSize, improvement)
		}
	}
}
