package searcher

import (
	"nestris/game"
	"sync"
)

// mockRules scripts the collaborators of a playout. Advance adds placement.Y to the line
// count, so a mock placement's Y is the number of lines it clears.
type mockRules struct {
	mu       sync.Mutex
	mode     func(state game.GameState) game.AiMode
	moves    func(state game.GameState, piece game.Piece) []game.SimState
	eval     func(prev, next game.GameState, placement game.SimState) float32
	weights  game.WeightTable
	searched []int // Piece indices passed to MoveSearch, in call order
}

func newMockRules() *mockRules {
	var weights game.WeightTable
	weights[game.Standard] = game.FastEvalWeights{BurnCoef: 1, TetrisCoef: 10, DeathCoef: -1000}
	weights[game.Dig] = game.FastEvalWeights{BurnCoef: 100, TetrisCoef: 1000, DeathCoef: -2000}
	weights[game.NearKillscreen] = game.FastEvalWeights{BurnCoef: 10, TetrisCoef: 100, DeathCoef: -3000}
	weights[game.Killscreen] = game.FastEvalWeights{BurnCoef: 0, TetrisCoef: 0, DeathCoef: -4000}

	return &mockRules{
		mode: func(game.GameState) game.AiMode { return game.Standard },
		moves: func(_ game.GameState, piece game.Piece) []game.SimState {
			return []game.SimState{{Piece: piece}}
		},
		eval:    func(game.GameState, game.GameState, game.SimState) float32 { return 0 },
		weights: weights,
	}
}

func (m *mockRules) EvalContext(state game.GameState) game.EvalContext {
	return game.EvalContext{AiMode: m.mode(state), InputFrameTimeline: game.Timeline15Hz}
}

func (m *mockRules) Weights(mode game.AiMode) game.FastEvalWeights {
	return m.weights[mode]
}

func (m *mockRules) MoveSearch(state game.GameState, piece game.Piece, _ game.InputFrameTimeline) []game.SimState {
	m.mu.Lock()
	m.searched = append(m.searched, piece.Index)
	m.mu.Unlock()
	return m.moves(state, piece)
}

func (m *mockRules) Advance(state game.GameState, placement game.SimState, _ game.EvalContext) game.GameState {
	next := state
	next.Lines += placement.Y
	next.PieceCount++
	return next
}

func (m *mockRules) Evaluate(prev, next game.GameState, placement game.SimState, _ game.EvalContext, _ game.FastEvalWeights) float32 {
	return m.eval(prev, next, placement)
}

func (m *mockRules) LineClearFactor(lines int, weights game.FastEvalWeights) float32 {
	return game.LineClearFactor(lines, weights)
}

// spyRules counts move searches on top of real rules
type spyRules struct {
	Rules
	mu       sync.Mutex
	searches int
}

func (s *spyRules) MoveSearch(state game.GameState, piece game.Piece, timeline game.InputFrameTimeline) []game.SimState {
	s.mu.Lock()
	s.searches++
	s.mu.Unlock()
	return s.Rules.MoveSearch(state, piece, timeline)
}

func sequenceOf(pieces ...int) game.Sequence {
	var seq game.Sequence
	copy(seq[:], pieces)
	return seq
}
