package llm

import (
	"context"
	"os"
)

// Client is the external generative model: a black box that takes a
// prompt and returns text. One attempt per request, no retries; any
// error puts the caller on its local fallback path.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// FromEnv picks the configured provider. LLM_PROVIDER selects "llama";
// anything else (including unset) means Gemini. Missing credentials are
// reported on the first Complete call, not here, so the API can boot
// without AI configured.
func FromEnv() Client {
	if os.Getenv("LLM_PROVIDER") == "llama" {
		return NewLLaMAClient()
	}
	return NewGeminiClient()
}
