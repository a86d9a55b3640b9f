package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels for the engine's LLM call sites. Free-form strings are
// accepted too; these are the ones the CLI filters and aggregates on.
const (
	PurposeExplanation = "explanation"
)

// WithPurpose attaches a purpose label to the context so the logging
// decorator can tag the resulting LLM request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
