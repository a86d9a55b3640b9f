package explain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Kairavparikh/quizwhiz/internal/learnstate"
	"github.com/Kairavparikh/quizwhiz/internal/llm"
)

func testRequest(state learnstate.LearningState) Request {
	return Request{
		Concept:       "fraction-addition",
		QuestionText:  "What is 1/2 + 1/3?",
		CorrectAnswer: "5/6",
		LearnerAnswer: "2/5",
		State:         state,
	}
}

func validLLMResponse() json.RawMessage {
	return json.RawMessage(`{
		"explanation": "You added the numerators and denominators separately. Fractions need a common denominator first.",
		"follow_up_question": {
			"text": "What is 1/2 + 1/4?",
			"options": ["2/6", "3/4", "1/3"],
			"correct_index": 1
		}
	}`)
}

func TestExplain_ReturnsResultWithDifficulty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLLMResponse()})
	e := NewExplainer(mock, DefaultConfig())

	res, err := e.Explain(context.Background(), testRequest(learnstate.StateHighConfidenceWrong))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(res.Explanation, "common denominator") {
		t.Errorf("unexpected explanation: %q", res.Explanation)
	}
	if res.FollowUp.Text == "" {
		t.Error("follow-up text should be set")
	}
	if res.FollowUp.CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1", res.FollowUp.CorrectIndex)
	}
	// High-confidence wrong retries at the same difficulty.
	if res.Difficulty != learnstate.DifficultySame {
		t.Errorf("difficulty = %q, want same", res.Difficulty)
	}
}

func TestExplain_DifficultyTracksState(t *testing.T) {
	tests := []struct {
		state learnstate.LearningState
		want  learnstate.Difficulty
	}{
		{learnstate.StateHighConfidenceWrong, learnstate.DifficultySame},
		{learnstate.StateLowConfidenceWrong, learnstate.DifficultyEasier},
		{learnstate.StateLowConfidenceCorrect, learnstate.DifficultyHarder},
		{learnstate.StateHighConfidenceCorrect, learnstate.DifficultyHarder},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: validLLMResponse()})
			e := NewExplainer(mock, DefaultConfig())

			res, err := e.Explain(context.Background(), testRequest(tt.state))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Difficulty != tt.want {
				t.Errorf("difficulty = %q, want %q", res.Difficulty, tt.want)
			}
		})
	}
}

func TestExplain_PromptCarriesStateAndDifficulty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLLMResponse()})
	e := NewExplainer(mock, DefaultConfig())

	_, err := e.Explain(context.Background(), testRequest(learnstate.StateLowConfidenceWrong))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "knowledge gap") {
		t.Errorf("prompt should name the learner state, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"easier" difficulty`) {
		t.Errorf("prompt should request easier difficulty, got:\n%s", prompt)
	}
	if mock.Calls[0].Schema != ExplanationSchema {
		t.Error("request should carry the explanation schema")
	}
}

func TestExplain_RejectsOutOfRangeCorrectIndex(t *testing.T) {
	bad := json.RawMessage(`{
		"explanation": "ok",
		"follow_up_question": {"text": "q", "options": ["a", "b"], "correct_index": 5}
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	e := NewExplainer(mock, DefaultConfig())

	_, err := e.Explain(context.Background(), testRequest(learnstate.StateHighConfidenceWrong))
	if err == nil {
		t.Fatal("expected error for out-of-range correct index")
	}
}

func TestExplain_PropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // Empty queue returns ErrProviderUnavailable.
	e := NewExplainer(mock, DefaultConfig())

	_, err := e.Explain(context.Background(), testRequest(learnstate.StateHighConfidenceWrong))
	if err == nil {
		t.Fatal("expected error from provider")
	}
}
