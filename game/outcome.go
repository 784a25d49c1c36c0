package game

// Outcome is the terminal classification of a game.
type Outcome int

const (
	XWins Outcome = iota
	OWins
	Draw
	XPenalty
	OPenalty
)

// RankedOutcomes lists every outcome in reporting order.
var RankedOutcomes = [...]Outcome{XWins, OWins, Draw, XPenalty, OPenalty}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X_WINS"
	case OWins:
		return "O_WINS"
	case Draw:
		return "DRAW"
	case XPenalty:
		return "X_PENALTY"
	case OPenalty:
		return "O_PENALTY"
	default:
		return "UNKNOWN"
	}
}

// WinFor maps a mark to its winning outcome.
func WinFor(m Mark) Outcome {
	if m == X {
		return XWins
	}
	return OWins
}

// PenaltyFor maps a mark to the penalty charged against it.
func PenaltyFor(m Mark) Outcome {
	if m == X {
		return XPenalty
	}
	return OPenalty
}
