package engine

import (
	"errors"
	"fmt"
	"nestris/experiments/metrics"
	"nestris/game"
	"nestris/searcher"
	"nestris/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// PieceSource deals the pieces of a game
type PieceSource interface {
	Next() game.Piece
}

type Engine struct {
	State  game.GameState
	Rules  searcher.Rules
	Agent  agent.Agent
	Pieces PieceSource
}

func LocalEngine(state game.GameState, rules searcher.Rules, a agent.Agent, pieces PieceSource) *Engine {
	if rules == nil || a == nil || pieces == nil {
		panic("engine needs rules, an agent and a piece source")
	}
	return &Engine{
		State:  state,
		Rules:  rules,
		Agent:  a,
		Pieces: pieces,
	}
}

// Run executes the game loop until the board tops out or maxPieces pieces are placed.
func (e *Engine) Run(maxPieces int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	if maxPieces <= 0 || maxPieces > MaxPieces {
		maxPieces = MaxPieces
	}

	gameMetric := metrics.GameMetric{
		StartLevel: e.State.Level,
		StartTime:  time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("starting game at level %d", e.State.Level)

	for step := 1; step <= maxPieces; step++ {
		piece := e.Pieces.Next()
		decision, err := e.Agent.FindMove(e.State, piece)
		if errors.Is(err, agent.ErrNoPlacement) {
			gameMetric.ToppedOut = true
			log.Info().Msgf("topped out on piece %d (%c)", step, piece.ID)
			break
		}
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("failed to find move %d: %w", step, err)
		}

		ctx := e.Rules.EvalContext(e.State)
		next := e.Rules.Advance(e.State, decision.Placement, ctx)
		cleared := next.Lines - e.State.Lines
		if cleared == 4 {
			gameMetric.Tetrises++
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Piece:        piece.String(),
			Rotation:     decision.Placement.RotationIndex,
			Column:       decision.Placement.Column(),
			LinesCleared: cleared,
			Value:        float64(decision.Value),
			SearchMetric: decision.Metric,
		})

		if next.Level != e.State.Level {
			log.Info().Msgf("level %d reached after %d lines", next.Level, next.Lines)
		}
		e.State = next

		if next.Board.IsToppedOut() {
			gameMetric.ToppedOut = true
			log.Info().Msgf("topped out after piece %d", step)
			break
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Pieces = e.State.PieceCount
	gameMetric.Lines = e.State.Lines
	gameMetric.Level = e.State.Level

	log.Info().Msgf("game over: %d lines, level %d, tetris rate %.2f",
		gameMetric.Lines, gameMetric.Level, gameMetric.TetrisRate())

	return gameMetric, moveMetrics, nil
}
