package trust

const (
	BaselineCenti = 3650
	MinCenti      = 0
	MaxCenti      = 10000
)

// Score is a bounded trust value kept in hundredths so that every event delta is exact.
type Score struct {
	centi int
}

func Baseline() Score {
	return Score{centi: BaselineCenti}
}

// ScoreFromCenti clamps a stored value into [0, 100].
func ScoreFromCenti(centi int) Score {
	return Score{centi: clamp(centi)}
}

func (s Score) Apply(e Event) Score {
	return Score{centi: clamp(s.centi + e.DeltaCenti())}
}

func (s Score) Centi() int {
	return s.centi
}

// Value is the score rounded to two decimals.
func (s Score) Value() float64 {
	return float64(s.centi) / 100
}

func clamp(centi int) int {
	if centi < MinCenti {
		return MinCenti
	}
	if centi > MaxCenti {
		return MaxCenti
	}
	return centi
}
