package main

import (
	"flag"
	"fmt"
	"nestris/config"
	"nestris/engine"
	"nestris/experiments"
	"nestris/experiments/metrics"
	"nestris/game"
	"nestris/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "play", "One of play, eval, throughput, experiment")
	numGoroutines := flag.Int("goroutines", 0, "Number of goroutines for parallel playouts")
	numPlayouts := flag.Int("playouts", 0, "Number of canonical sequences averaged per evaluation")
	seed := flag.Uint64("seed", 0, "Seed of the piece generator")
	games := flag.Int("games", 3, "Games per agent config in experiment mode")
	outDir := flag.String("out", "experiments", "Directory for experiment records")
	trace := flag.Bool("trace", false, "Log every playout placement and board")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *numGoroutines > 0 {
		cfg.Goroutines = *numGoroutines
	}
	if *numPlayouts > 0 {
		cfg.Playouts = *numPlayouts
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *trace {
		cfg.Trace = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if cfg.Trace {
		searcher.LoggingEnabled = true
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rules, err := cfg.Rules()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid weights")
	}

	switch *mode {
	case "play":
		err = play(cfg, rules)
	case "eval":
		err = eval(cfg, rules)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(rules, game.NewGameState(cfg.StartLevel), cfg.Playouts, []int{1, 2, 4, 8})
	case "experiment":
		err = experiment(cfg, rules, *games, *outDir)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func play(cfg config.Config, rules game.StandardRules) error {
	agentConfig := metrics.AgentConfig{Goroutines: cfg.Goroutines, Playouts: cfg.Playouts, Breadth: cfg.Breadth}
	a := experiments.NewAgent(rules, agentConfig)
	e := engine.LocalEngine(game.NewGameState(cfg.StartLevel), rules, a, game.NewPieceGenerator(cfg.Seed))

	gameMetric, _, err := e.Run(cfg.MaxPieces)
	if err != nil {
		return err
	}

	fmt.Print(renderBoard(os.Stdout, e.State.Board))
	fmt.Printf("pieces=%d lines=%d level=%d tetris rate=%.2f topped out=%t\n",
		gameMetric.Pieces, gameMetric.Lines, gameMetric.Level, gameMetric.TetrisRate(), gameMetric.ToppedOut)
	return nil
}

func eval(cfg config.Config, rules game.StandardRules) error {
	state := game.NewGameState(cfg.StartLevel)
	playout := searcher.NewPlayout(rules, searcher.WithGoroutines(cfg.Goroutines), searcher.WithMetrics())
	value, err := playout.Score(state, cfg.Playouts)
	if err != nil {
		return err
	}
	metric := playout.Metrics()
	fmt.Printf("value=%.3f mean=%.3f stddev=%.3f deaths=%d duration=%s\n",
		value, metric.Mean, metric.StdDev, metric.Deaths, metric.Duration)
	return nil
}

func experiment(cfg config.Config, rules game.StandardRules, games int, outDir string) error {
	writer, err := metrics.NewWriter(outDir, "playout")
	if err != nil {
		return err
	}
	settings := experiments.Settings{
		Rules:      rules,
		NumGames:   games,
		StartLevel: cfg.StartLevel,
		MaxPieces:  cfg.MaxPieces,
		Seed:       cfg.Seed,
	}
	if err := experiments.RunPlayoutExperiment("playout", settings, experiments.DefaultConfigs, writer); err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", writer.Dir())
	return nil
}
