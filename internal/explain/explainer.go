package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/Kairavparikh/quizwhiz/internal/learnstate"
	"github.com/Kairavparikh/quizwhiz/internal/llm"
)

// Config holds configuration for the LLM explainer.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}

// Explainer generates answer explanations and follow-up questions, pitched
// at the learner's classified state.
type Explainer struct {
	provider llm.Provider
	cfg      Config
}

// NewExplainer creates an LLM-backed explainer.
func NewExplainer(provider llm.Provider, cfg Config) *Explainer {
	return &Explainer{provider: provider, cfg: cfg}
}

// Request is the input for explanation generation.
type Request struct {
	Concept       string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	State         learnstate.LearningState
}

// FollowUpQuestion is a generated multiple-choice follow-up.
type FollowUpQuestion struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Result is a generated explanation plus its follow-up.
type Result struct {
	Explanation string                `json:"explanation"`
	FollowUp    FollowUpQuestion      `json:"follow_up_question"`
	Difficulty  learnstate.Difficulty `json:"difficulty"`
}

// Explain generates an explanation and a follow-up question for one answer.
// The learning state sets the tone of the explanation and the difficulty of
// the follow-up.
func (e *Explainer) Explain(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	difficulty := learnstate.FollowUpDifficulty(req.State)
	userMsg, err := buildExplainMessage(req, difficulty)
	if err != nil {
		return nil, fmt.Errorf("build explanation prompt: %w", err)
	}

	llmReq := llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM explanation failed: %w", err)
	}

	var out Result
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse explanation response: %w", err)
	}
	out.Difficulty = difficulty

	if out.FollowUp.CorrectIndex < 0 || out.FollowUp.CorrectIndex >= len(out.FollowUp.Options) {
		return nil, fmt.Errorf("follow-up correct_index %d out of range for %d options",
			out.FollowUp.CorrectIndex, len(out.FollowUp.Options))
	}

	return &out, nil
}

const explainSystemPrompt = `You are a tutor reviewing a learner's quiz answer. Explain the correct answer in a tone that fits the learner's state, then write one multiple-choice follow-up question at the requested difficulty.

Instructions:
- Address the learner directly and keep the explanation under four sentences.
- If the learner was confidently wrong, gently surface the misconception before explaining.
- The follow-up must test the same concept at the requested difficulty, never a different concept.
- Provide 3 or 4 answer options with exactly one correct.`

var explainUserTemplate = template.Must(template.New("explain").Parse(`Concept: {{.Concept}}
Question: {{.QuestionText}}
Correct answer: {{.CorrectAnswer}}
Learner's answer: {{.LearnerAnswer}}
Learner state: {{.StateLabel}} ({{.StateMessage}})

Write the explanation, then a follow-up question at "{{.Difficulty}}" difficulty.`))

type explainTemplateData struct {
	Concept       string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	StateLabel    string
	StateMessage  string
	Difficulty    learnstate.Difficulty
}

func buildExplainMessage(req Request, difficulty learnstate.Difficulty) (string, error) {
	info := req.State.Info()
	data := explainTemplateData{
		Concept:       req.Concept,
		QuestionText:  req.QuestionText,
		CorrectAnswer: req.CorrectAnswer,
		LearnerAnswer: req.LearnerAnswer,
		StateLabel:    info.Label,
		StateMessage:  info.Message,
		Difficulty:    difficulty,
	}
	var buf bytes.Buffer
	if err := explainUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
