package learnstate

import "testing"

func TestClassify_AllCombinations(t *testing.T) {
	tests := []struct {
		name    string
		correct bool
		conf    Confidence
		want    LearningState
	}{
		{"wrong high", false, ConfidenceHigh, StateHighConfidenceWrong},
		{"wrong medium", false, ConfidenceMedium, StateLowConfidenceWrong},
		{"wrong low", false, ConfidenceLow, StateLowConfidenceWrong},
		{"correct high", true, ConfidenceHigh, StateHighConfidenceCorrect},
		{"correct medium", true, ConfidenceMedium, StateLowConfidenceCorrect},
		{"correct low", true, ConfidenceLow, StateLowConfidenceCorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.correct, tt.conf)
			if got != tt.want {
				t.Errorf("Classify(%v, %q) = %q, want %q", tt.correct, tt.conf, got, tt.want)
			}
			// Stable across repeated calls.
			if again := Classify(tt.correct, tt.conf); again != got {
				t.Errorf("Classify not stable: first %q, second %q", got, again)
			}
		})
	}
}

func TestClassify_MalformedConfidenceBehavesAsLow(t *testing.T) {
	if got := Classify(false, Confidence("??")); got != StateLowConfidenceWrong {
		t.Errorf("Classify(false, ??) = %q, want %q", got, StateLowConfidenceWrong)
	}
	if got := Classify(true, Confidence("")); got != StateLowConfidenceCorrect {
		t.Errorf("Classify(true, empty) = %q, want %q", got, StateLowConfidenceCorrect)
	}
}

func TestInfo_PriorityOrdering(t *testing.T) {
	states := All()
	for i := 1; i < len(states); i++ {
		prev := states[i-1].Info().Priority
		cur := states[i].Info().Priority
		if prev >= cur {
			t.Errorf("priority(%s)=%d not below priority(%s)=%d", states[i-1], prev, states[i], cur)
		}
	}
}

func TestInfo_FixedAttributes(t *testing.T) {
	tests := []struct {
		state    LearningState
		priority int
		interval int
	}{
		{StateHighConfidenceWrong, 1, 1},
		{StateLowConfidenceWrong, 2, 3},
		{StateLowConfidenceCorrect, 3, 7},
		{StateHighConfidenceCorrect, 5, 14},
	}

	for _, tt := range tests {
		info := tt.state.Info()
		if info.Priority != tt.priority {
			t.Errorf("%s priority = %d, want %d", tt.state, info.Priority, tt.priority)
		}
		if info.ReviewIntervalDays != tt.interval {
			t.Errorf("%s interval = %d, want %d", tt.state, info.ReviewIntervalDays, tt.interval)
		}
		if info.Label == "" || info.Message == "" {
			t.Errorf("%s has empty label or message", tt.state)
		}
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		in   string
		want Confidence
	}{
		{"high", ConfidenceHigh},
		{"HIGH", ConfidenceHigh},
		{" medium ", ConfidenceMedium},
		{"low", ConfidenceLow},
		{"", ConfidenceLow},
		{"certain", ConfidenceLow},
	}
	for _, tt := range tests {
		if got := ParseConfidence(tt.in); got != tt.want {
			t.Errorf("ParseConfidence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
