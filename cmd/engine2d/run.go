package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/younwookim/engine2d/internal/application/engine"
	"github.com/younwookim/engine2d/internal/application/replay"
	"github.com/younwookim/engine2d/internal/registry"
)

var (
	flagRecord string
	flagSeed   uint64
)

var runCmd = &cobra.Command{
	Use:   "run <game>",
	Short: "Run a game in a window",
	Long: `Open a window and run the specified game.

Input can be recorded to a JSON file and played back later with
'engine2d replay'. Use --record auto to pick a timestamped file name.

Examples:
  engine2d run bullethell
  engine2d run bullethell --seed 42
  engine2d run keyboard --record keys.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGame,
}

func init() {
	runCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (\"auto\" generates a name)")
	runCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runGame(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if err := checkGame(gameID); err != nil {
		return err
	}

	loader, cfg, logger, err := setup()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	deps := registry.Deps{Config: loader, Seed: seed, Log: logger}
	if store := openScores(cfg.Storage.Path, logger); store != nil {
		defer store.Close()
		deps.Scores = store
	}

	logic, err := registry.Create(gameID, deps)
	if err != nil {
		return err
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	var rec *replay.Recorder
	if flagRecord != "" {
		rec = replay.NewRecorder(gameID, seed)
		opts = append(opts, engine.WithRecorder(rec))
	}

	cfg.Window.Title = registry.Title(gameID)
	e, err := engine.New(*cfg, logic, opts...)
	if err != nil {
		return err
	}

	logger.Info("starting game", "game", gameID, "seed", seed)
	runErr := e.Run()

	if rec != nil {
		filename := flagRecord
		if filename == "auto" {
			filename = replay.GenerateFilename(gameID)
		}
		if err := rec.Save(filename); err != nil {
			logger.Error("failed to save recording", "file", filename, "error", err)
		} else {
			logger.Info("recording saved", "file", filename, "frames", rec.FrameCount())
		}
	}
	return runErr
}
