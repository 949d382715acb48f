package game

import (
	"fmt"
	"strings"
)

// AiMode is the strategic posture the AI takes for a board
type AiMode int

const (
	Standard AiMode = iota
	Dig
	NearKillscreen
	Killscreen

	NumModes
)

const (
	KillscreenLevel     = 29
	NearKillscreenLevel = 28
)

var modeNames = [NumModes]string{"standard", "dig", "near_killscreen", "killscreen"}

func (m AiMode) String() string {
	if m < 0 || m >= NumModes {
		return fmt.Sprintf("AiMode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseAiMode(name string) (AiMode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return AiMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ai mode %q", name)
}

// InputFrameTimeline describes on which frames the player can press a direction.
// 'X' marks an input frame, any other character a wait frame; the pattern repeats.
type InputFrameTimeline string

const (
	Timeline15Hz InputFrameTimeline = "X..."
	Timeline30Hz InputFrameTimeline = "X."
)

func (t InputFrameTimeline) isInputFrame(frame int) bool {
	if len(t) == 0 {
		return false
	}
	return t[frame%len(t)] == 'X'
}

// EvalContext is derived from a state before each placement decision
type EvalContext struct {
	AiMode             AiMode
	InputFrameTimeline InputFrameTimeline
}

// GetEvalContext classifies the board into a mode and pairs it with the input timeline
func GetEvalContext(state GameState, timeline InputFrameTimeline) EvalContext {
	return EvalContext{
		AiMode:             classify(state),
		InputFrameTimeline: timeline,
	}
}

func classify(state GameState) AiMode {
	switch {
	case state.Level >= KillscreenLevel:
		return Killscreen
	case state.Board.Holes() > 0:
		return Dig
	case state.Level >= NearKillscreenLevel:
		return NearKillscreen
	default:
		return Standard
	}
}
