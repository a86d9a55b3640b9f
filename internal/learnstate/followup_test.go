package learnstate

import "testing"

func TestFollowUpDifficulty(t *testing.T) {
	tests := []struct {
		state LearningState
		want  Difficulty
	}{
		{StateHighConfidenceWrong, DifficultySame},
		{StateLowConfidenceWrong, DifficultyEasier},
		{StateLowConfidenceCorrect, DifficultyHarder},
		{StateHighConfidenceCorrect, DifficultyHarder},
	}
	for _, tt := range tests {
		if got := FollowUpDifficulty(tt.state); got != tt.want {
			t.Errorf("FollowUpDifficulty(%s) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
