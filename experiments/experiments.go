package experiments

import (
	"fmt"
	"nestris/engine"
	"nestris/experiments/metrics"
	"nestris/game"
	"nestris/searcher"
	"nestris/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Settings shared by every game of an experiment
type Settings struct {
	Rules      game.StandardRules
	NumGames   int // Per agent config
	StartLevel int
	MaxPieces  int
	Seed       uint64 // Game i of every config uses Seed+i, so configs face the same pieces
}

// DefaultConfigs compares a greedy agent against playout agents of growing lookahead
var DefaultConfigs = []metrics.AgentConfig{
	{ID: 0, Goroutines: 1},
	{ID: 1, Goroutines: 4, Playouts: 1, Breadth: 5},
	{ID: 2, Goroutines: 4, Playouts: 7, Breadth: 5},
	{ID: 3, Goroutines: 4, Playouts: 14, Breadth: 8},
}

func NewAgent(rules searcher.Rules, config metrics.AgentConfig, options ...searcher.Option) agent.Agent {
	if config.Playouts <= 0 {
		return agent.NewGreedyAgent(rules)
	}
	options = append([]searcher.Option{searcher.WithGoroutines(config.Goroutines)}, options...)
	playout := searcher.NewPlayout(rules, options...)
	return agent.NewPlayoutAgent(rules, playout, config.Playouts, config.Breadth)
}

// RunPlayoutExperiment plays NumGames games with each agent config and writes the records
func RunPlayoutExperiment(name string, settings Settings, configs []metrics.AgentConfig, writer *metrics.Writer) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(configs), config)

		for i := 0; i < settings.NumGames; i++ {
			seed := settings.Seed + uint64(i)
			a := NewAgent(settings.Rules, config, searcher.WithMetrics())
			e := engine.LocalEngine(game.NewGameState(settings.StartLevel), settings.Rules, a, game.NewPieceGenerator(seed))

			gameMetric, moveMetrics, err := e.Run(settings.MaxPieces)
			if err != nil {
				return fmt.Errorf("config %d game %d failed: %w", config.ID, i+1, err)
			}
			gameMetric.Seed = seed

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed config %d game %d of %d with %d lines", config.ID, i+1, settings.NumGames, gameMetric.Lines)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	return nil
}
