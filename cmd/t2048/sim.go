package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSimMoves int
	flagSimYAML  bool
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play random moves headlessly",
	Long: `Play random moves until the board is stuck or the move limit is hit,
then print the final board.

The same --seed always produces the same run.

Examples:
  t2048 sim --seed 7
  t2048 sim --moves 200 --seed 7 --yaml
  t2048 sim --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 10000, "Stop after this many effective moves")
	simCmd.Flags().BoolVar(&flagSimYAML, "yaml", false, "Print the final snapshot as YAML")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the run in the history database")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := simulate(cfg, seed, flagSimMoves)

	reason := storage.EndStuck
	if !g.State().GameOver {
		finish := core.NewInputFrame()
		finish.Set(core.ActionFinish)
		g.Step(finish)
		reason = storage.EndFinished
	}

	if flagSimYAML {
		err = writeSnapshotYAML(os.Stdout, g.Snapshot())
	} else {
		writeBoard(os.Stdout, g.Snapshot())
		fmt.Printf("seed: %d  reason: %s\n", seed, reason)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		os.Exit(1)
	}

	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		st := g.State()
		run := storage.NewRun(g.ID(), "sim", seed, st.Moves, st.MaxTile, g.Numbers(), reason)
		if _, err := store.SaveRun(run); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
			os.Exit(1)
		}
	}
}

// simulate plays uniformly random directions with animation off until the
// board is stuck or maxMoves effective moves were made.
func simulate(cfg config.T2048Config, seed int64, maxMoves int) *t2048.Game {
	cfg.Animation = config.AnimationConfig{}

	g := t2048.New()
	g.ResetWith(cfg, core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: 1,
		Seed:     seed,
	})

	pick := rand.New(rand.NewSource(seed + 1))
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	// A live board always has a moving direction, so the attempt cap only
	// guards against a misbehaving config.
	for attempts := 0; attempts < maxMoves*64; attempts++ {
		st := g.State()
		if st.GameOver || st.Moves >= maxMoves {
			break
		}
		in := core.NewInputFrame()
		in.Set(actions[pick.Intn(len(actions))])
		g.Step(in)
	}
	return g
}

func writeSnapshotYAML(w io.Writer, snap t2048.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("sim: cannot encode snapshot: %w", err)
	}
	return enc.Close()
}

func writeBoard(w io.Writer, snap t2048.Snapshot) {
	writeGrid(w, snap.Board)
	fmt.Fprintf(w, "\nmoves: %d  max: %d  tiles: %d  state: %s\n", snap.Moves, snap.MaxTile, snap.Tiles, snap.State)
}

// writeGrid prints one row per line, "." for empty cells.
func writeGrid(w io.Writer, rows [][]int) {
	for _, row := range rows {
		for _, n := range row {
			if n == 0 {
				fmt.Fprintf(w, "%6s", ".")
				continue
			}
			fmt.Fprintf(w, "%6d", n)
		}
		fmt.Fprintln(w)
	}
}
