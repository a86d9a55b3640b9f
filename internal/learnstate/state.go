package learnstate

// LearningState classifies a single answer event by correctness × confidence.
type LearningState string

const (
	StateHighConfidenceWrong   LearningState = "high_confidence_wrong"
	StateLowConfidenceWrong    LearningState = "low_confidence_wrong"
	StateLowConfidenceCorrect  LearningState = "low_confidence_correct"
	StateHighConfidenceCorrect LearningState = "high_confidence_correct"
)

// Info holds the fixed attributes attached to a learning state.
type Info struct {
	Label              string // Interpretation shown in stats and logs.
	Priority           int    // 1 = highest urgency, 5 = lowest.
	ReviewIntervalDays int    // Days until the concept should resurface.
	Message            string // User-facing message template.
}

// stateInfo is the fixed attribute table. Priorities order review urgency:
// a confidently-held wrong answer is the most urgent signal, a confidently-held
// correct answer the least.
var stateInfo = map[LearningState]Info{
	StateHighConfidenceWrong: {
		Label:              "misconception",
		Priority:           1,
		ReviewIntervalDays: 1,
		Message:            "You were confident but this one got you. Let's look at why.",
	},
	StateLowConfidenceWrong: {
		Label:              "knowledge gap",
		Priority:           2,
		ReviewIntervalDays: 3,
		Message:            "You weren't sure and missed it — this concept needs some work.",
	},
	StateLowConfidenceCorrect: {
		Label:              "fragile understanding",
		Priority:           3,
		ReviewIntervalDays: 7,
		Message:            "Right answer, shaky confidence. A little practice will lock it in.",
	},
	StateHighConfidenceCorrect: {
		Label:              "solid understanding",
		Priority:           5,
		ReviewIntervalDays: 14,
		Message:            "Confident and correct — you own this one.",
	},
}

// Classify maps an answer event to a learning state. Total over its domain:
// only "high" confidence is distinguished, medium behaves as low on both
// branches.
func Classify(correct bool, conf Confidence) LearningState {
	if correct {
		if conf.IsHigh() {
			return StateHighConfidenceCorrect
		}
		return StateLowConfidenceCorrect
	}
	if conf.IsHigh() {
		return StateHighConfidenceWrong
	}
	return StateLowConfidenceWrong
}

// Info returns the fixed priority/interval/message attributes for a state.
func (s LearningState) Info() Info {
	return stateInfo[s]
}

// All returns the four states in priority order (most urgent first).
func All() []LearningState {
	return []LearningState{
		StateHighConfidenceWrong,
		StateLowConfidenceWrong,
		StateLowConfidenceCorrect,
		StateHighConfidenceCorrect,
	}
}
