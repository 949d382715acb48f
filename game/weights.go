package game

// FastEvalWeights are the coefficients of the fast evaluation for one mode.
// DeathCoef doubles as the selection floor and the value of an unsurvivable state.
type FastEvalWeights struct {
	AvgHeightCoef   float32 `yaml:"avgHeightCoef"`
	BurnCoef        float32 `yaml:"burnCoef"`
	CoveredWellCoef float32 `yaml:"coveredWellCoef"`
	Col10Coef       float32 `yaml:"col10Coef"`
	DeathCoef       float32 `yaml:"deathCoef"`
	ExtremeGapCoef  float32 `yaml:"extremeGapCoef"`
	HighCoef        float32 `yaml:"highCoef"`
	HoleCoef        float32 `yaml:"holeCoef"`
	SurfaceCoef     float32 `yaml:"surfaceCoef"`
	TetrisCoef      float32 `yaml:"tetrisCoef"`
	TetrisReadyCoef float32 `yaml:"tetrisReadyCoef"`
	ScareHeight     int     `yaml:"scareHeight"`
}

// WeightTable holds one weight set per mode, indexed by AiMode
type WeightTable [NumModes]FastEvalWeights

func (t WeightTable) Get(mode AiMode) FastEvalWeights {
	return t[mode]
}

func DefaultWeightTable() WeightTable {
	standard := FastEvalWeights{
		AvgHeightCoef:   -5,
		BurnCoef:        -200,
		CoveredWellCoef: -50,
		Col10Coef:       -8,
		DeathCoef:       -100000,
		ExtremeGapCoef:  -6,
		HighCoef:        -30,
		HoleCoef:        -120,
		SurfaceCoef:     -2,
		TetrisCoef:      500,
		TetrisReadyCoef: 15,
		ScareHeight:     10,
	}

	dig := standard
	dig.BurnCoef = 0
	dig.Col10Coef = 0
	dig.CoveredWellCoef = 0
	dig.HoleCoef = -250
	dig.TetrisReadyCoef = 0
	dig.ScareHeight = 7

	near := standard
	near.BurnCoef = -60
	near.HighCoef = -45
	near.ScareHeight = 8

	kill := standard
	kill.BurnCoef = 0
	kill.TetrisCoef = 120
	kill.HighCoef = -60
	kill.HoleCoef = -200
	kill.ScareHeight = 6

	return WeightTable{
		Standard:       standard,
		Dig:            dig,
		NearKillscreen: near,
		Killscreen:     kill,
	}
}

// LineClearFactor converts a number of cleared lines into a reward
func LineClearFactor(lines int, weights FastEvalWeights) float32 {
	switch {
	case lines == 4:
		return weights.TetrisCoef
	case lines > 0:
		return weights.BurnCoef * float32(lines)
	default:
		return 0
	}
}
