package learnstate

// Difficulty is the relative difficulty of a follow-up question.
type Difficulty string

const (
	DifficultySame   Difficulty = "same"
	DifficultyEasier Difficulty = "easier"
	DifficultyHarder Difficulty = "harder"
)

// followUps maps each state to the follow-up question difficulty.
// A confident wrong answer gets the same difficulty again (probe the
// misconception), an unsure wrong answer gets an easier one, and any
// correct answer earns a harder one.
var followUps = map[LearningState]Difficulty{
	StateHighConfidenceWrong:   DifficultySame,
	StateLowConfidenceWrong:    DifficultyEasier,
	StateLowConfidenceCorrect:  DifficultyHarder,
	StateHighConfidenceCorrect: DifficultyHarder,
}

// FollowUpDifficulty returns the follow-up difficulty for a state.
func FollowUpDifficulty(s LearningState) Difficulty {
	return followUps[s]
}
