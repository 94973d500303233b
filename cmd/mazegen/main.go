// cmd/mazegen/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"go-hex-maze/internal/analyzer"
	"go-hex-maze/internal/maze"
	"go-hex-maze/internal/solver"
)

var (
	verbose bool
	logger  *zap.Logger

	rows      int
	cols      int
	usePreset bool
	width     float64
	height    float64
	seed      int64
	count     int
	output    string

	solverURL string
)

var rootCmd = &cobra.Command{
	Use:   "mazegen",
	Short: "Procedural hexagonal maze generator and connectivity solver",
	Long: `mazegen carves random passages through a hexagonal grid and emits the
result as a path map: cells with open direction slots, the passage list
and the grid dimensions.

The solve command additionally partitions the maze into connected
components and delegates the large ones to an external solver service
over a websocket exchange.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more mazes and write their path maps as JSON",
	RunE:  runGenerate,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate a maze, analyze connectivity and delegate large components",
	RunE:  runSolve,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, cmd := range []*cobra.Command{generateCmd, solveCmd} {
		cmd.Flags().IntVar(&rows, "rows", 12, "row count (preset mode)")
		cmd.Flags().IntVar(&cols, "cols", 16, "column count (preset mode)")
		cmd.Flags().BoolVar(&usePreset, "preset", false, "use explicit rows/cols instead of container size")
		cmd.Flags().Float64Var(&width, "width", 1200, "container width in pixels")
		cmd.Flags().Float64Var(&height, "height", 900, "container height in pixels")
		cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for time-based")
	}
	generateCmd.Flags().IntVar(&count, "count", 1, "number of independent mazes to generate")
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "output file (or file prefix with --count), default stdout")
	solveCmd.Flags().StringVar(&solverURL, "solver-url", os.Getenv("SOLVER_URL"), "websocket endpoint of the external solver")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
}

func options(seedOffset int64) maze.Options {
	return maze.Options{
		UsePreset: usePreset,
		Rows:      rows,
		Cols:      cols,
		Width:     width,
		Height:    height,
		Seed:      seed + seedOffset,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	session := uuid.NewString()
	log := logger.With(zap.String("session", session))

	if count <= 1 {
		pm, err := maze.Generate(options(0), log)
		if err != nil {
			return err
		}
		return writePathMap(pm, output)
	}

	// Independent generations share no state and run concurrently.
	prefix := output
	if prefix == "" {
		prefix = "maze"
	}
	group, _ := errgroup.WithContext(cmd.Context())
	for i := 0; i < count; i++ {
		i := i
		group.Go(func() error {
			pm, err := maze.Generate(options(int64(i)), log)
			if err != nil {
				return err
			}
			return writePathMap(pm, fmt.Sprintf("%s-%d.json", prefix, i+1))
		})
	}
	return group.Wait()
}

func writePathMap(pm *maze.PathMap, path string) error {
	data, err := json.MarshalIndent(pm, "", "  ")
	if err != nil {
		return fmt.Errorf("encode path map: %w", err)
	}
	if path == "" {
		_, err = fmt.Println(string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write path map: %w", err)
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solverURL == "" {
		return fmt.Errorf("no solver endpoint: set --solver-url or SOLVER_URL")
	}

	session := uuid.NewString()
	log := logger.With(zap.String("session", session))

	pm, err := maze.Generate(options(0), log)
	if err != nil {
		return err
	}

	components := analyzer.Analyze(pm, log)
	large := analyzer.LargeComponents(components)
	fmt.Printf("maze %dx%d: %d cells, %d passages, %d components (%d delegated)\n",
		pm.Dimensions.Rows, pm.Dimensions.Cols,
		len(pm.Cells), len(pm.Edges), len(components), len(large))

	client := solver.NewClient(solverURL, log)
	if err := client.Solve(context.Background(), components, pm.Dimensions); err != nil {
		return fmt.Errorf("remote solve: %w", err)
	}

	for i, comp := range components {
		if comp.Path == nil {
			continue
		}
		fmt.Printf("component %d (size %d): path length %d: %v\n",
			i, comp.Size, comp.PathLength, comp.Path)
	}
	return nil
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
