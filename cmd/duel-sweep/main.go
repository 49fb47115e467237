package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"duel-ca/internal/sims/duel"
)

var (
	configPath string
	steps      int
	seeds      int
	workers    int
	gridW      int
	gridH      int
	logLevel   string
)

type paramSet struct {
	infectStrong int
	infectWeak   int
	diseaseTTL   int
	seedDisease  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("istr=%d iweak=%d tau=%d gdensity=%.3f",
		p.infectStrong, p.infectWeak, p.diseaseTTL, p.seedDisease)
}

type sweepResult struct {
	params paramSet

	extinctions  int
	winsA        int
	winsB        int
	coexistence  int
	meanOccupied float64
	meanContest  float64
}

// coexistRate ranks parameter sets by how often both species outlive the run.
func (r sweepResult) coexistRate(runs int) float64 {
	if runs == 0 {
		return 0
	}
	return float64(r.coexistence) / float64(runs)
}

var rootCmd = &cobra.Command{
	Use:   "duel-sweep",
	Short: "Sweep epidemic parameters of the duel automaton and report population outcomes",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)

		baseCfg := duel.DefaultConfig()
		if configPath != "" {
			baseCfg, err = duel.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("load config: %v", err)
			}
		}
		if gridW > 0 {
			baseCfg.Width = gridW
		}
		if gridH > 0 {
			baseCfg.Height = gridH
		}
		if workers <= 0 {
			workers = runtime.NumCPU()
		}

		sets := buildParamSets()
		logrus.Infof("sweeping %d parameter sets on a %dx%d grid (%d workers, %d seeds x %d steps)",
			len(sets), baseCfg.Width, baseCfg.Height, workers, seeds, steps)

		start := time.Now()
		results := runSweep(baseCfg, sets)

		sort.Slice(results, func(i, j int) bool {
			return results[i].coexistRate(seeds) > results[j].coexistRate(seeds)
		})

		fmt.Printf("%-40s %8s %6s %6s %8s %9s %9s\n",
			"params", "extinct", "A", "B", "coexist", "occupied", "contested")
		for _, r := range results {
			fmt.Printf("%-40s %8d %6d %6d %8d %8.1f%% %8.2f%%\n",
				r.params, r.extinctions, r.winsA, r.winsB, r.coexistence,
				100*r.meanOccupied, 100*r.meanContest)
		}
		logrus.Infof("sweep finished in %s", time.Since(start).Round(time.Millisecond))
	},
}

func buildParamSets() []paramSet {
	strongOptions := []int{2, 3, 4}
	weakOptions := []int{0, 1, 2}
	ttlOptions := []int{3, 5, 8}
	diseaseOptions := []float64{0.005, 0.02, 0.05}

	var sets []paramSet
	for _, istr := range strongOptions {
		for _, iweak := range weakOptions {
			for _, tau := range ttlOptions {
				for _, gd := range diseaseOptions {
					sets = append(sets, paramSet{
						infectStrong: istr,
						infectWeak:   iweak,
						diseaseTTL:   tau,
						seedDisease:  gd,
					})
				}
			}
		}
	}
	return sets
}

func runSweep(baseCfg duel.Config, sets []paramSet) []sweepResult {
	jobs := make(chan paramSet)
	out := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				out <- runScenarios(baseCfg, params)
			}
		}()
	}

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	var results []sweepResult
	for res := range out {
		logrus.Debugf("%s: %d/%d coexisting", res.params, res.coexistence, seeds)
		results = append(results, res)
	}
	return results
}

// runScenarios plays every seed for one parameter set and aggregates the
// terminal censuses. Each run owns its world, so scenarios parallelize
// freely; a single run is strictly sequential, as the engine requires.
func runScenarios(cfg duel.Config, params paramSet) sweepResult {
	cfg.Params.InfectStrong = params.infectStrong
	cfg.Params.InfectWeak = params.infectWeak
	cfg.Params.DiseaseTTL = params.diseaseTTL
	cfg.Params.SeedDisease = params.seedDisease

	res := sweepResult{params: params}
	total := float64(cfg.Width * cfg.Height)

	for seed := 1; seed <= seeds; seed++ {
		world, err := duel.NewWithConfig(cfg)
		if err != nil {
			logrus.Fatalf("world setup: %v", err)
		}
		world.Reset(int64(seed))
		for s := 0; s < steps; s++ {
			world.Step()
		}

		c := world.TakeCensus()
		res.meanOccupied += float64(c.SpeciesA+c.SpeciesB) / total
		res.meanContest += c.ContestedShare()
		switch {
		case c.Extinct():
			res.extinctions++
		default:
			if winner, ok := c.Winner(); ok {
				if winner == duel.SpeciesA {
					res.winsA++
				} else {
					res.winsB++
				}
			} else {
				res.coexistence++
			}
		}
	}
	if seeds > 0 {
		res.meanOccupied /= float64(seeds)
		res.meanContest /= float64(seeds)
	}
	return res
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file with base simulation settings")
	rootCmd.Flags().IntVar(&steps, "steps", 200, "generations to simulate per run")
	rootCmd.Flags().IntVar(&seeds, "seeds", 8, "seeded runs per parameter set")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = NumCPU)")
	rootCmd.Flags().IntVar(&gridW, "w", 0, "override grid columns")
	rootCmd.Flags().IntVar(&gridH, "h", 0, "override grid rows")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log verbosity level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
