package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/engine2d/internal/application/engine"
	"github.com/younwookim/engine2d/internal/application/replay"
	"github.com/younwookim/engine2d/internal/registry"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <game> <file>",
	Short: "Play back a recorded session",
	Long: `Feed the input recorded by 'engine2d run --record' back into the
game, with the recorded RNG seed. Scores are not saved during replays.

With --headless no window is opened: the recorded frames are stepped as
fast as possible and the loop statistics are printed.

Examples:
  engine2d replay bullethell run.json
  engine2d replay keyboard keys.json --headless`,
	Args: cobra.ExactArgs(2),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Step through the replay without a window")
}

func runReplay(cmd *cobra.Command, args []string) error {
	gameID, filename := args[0], args[1]
	if err := checkGame(gameID); err != nil {
		return err
	}

	replayer, err := replay.Load(filename)
	if err != nil {
		return err
	}
	if replayer.Game() != gameID {
		return fmt.Errorf("replay %s was recorded for %q, not %q", filename, replayer.Game(), gameID)
	}

	loader, cfg, logger, err := setup()
	if err != nil {
		return err
	}

	logic, err := registry.Create(gameID, registry.Deps{Config: loader, Seed: replayer.Seed(), Log: logger})
	if err != nil {
		return err
	}

	cfg.Window.Title = registry.Title(gameID) + " (replay)"
	e, err := engine.New(*cfg, logic, engine.WithSource(replayer), engine.WithLogger(logger))
	if err != nil {
		return err
	}

	if !flagHeadless {
		return e.Run()
	}

	for !replayer.Done() && !e.Context().ExitRequested() {
		if err := e.Step(1); err != nil {
			return err
		}
	}
	e.Stop()

	stats := e.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "Replayed %d/%d frames of %s: %d fixed updates, %d dropped steps\n",
		replayer.CurrentFrame(), replayer.TotalFrames(), gameID, stats.FixedUpdates, stats.DroppedSteps)
	return nil
}
