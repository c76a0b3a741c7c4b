package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"
)

// LLaMAClient talks to an OpenAI-compatible completion endpoint, used
// when a self-hosted model replaces Gemini.
type LLaMAClient struct {
	apiKey string
	model  string
	apiURL string
	http   *http.Client
}

func NewLLaMAClient() *LLaMAClient {
	return &LLaMAClient{
		apiKey: os.Getenv("LLAMA_API_KEY"),
		model:  os.Getenv("LLAMA_MODEL"),
		apiURL: os.Getenv("LLAMA_API_URL"),
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (l *LLaMAClient) Complete(ctx context.Context, prompt string) (string, error) {
	if l.apiKey == "" {
		return "", errors.New("missing LLAMA_API_KEY")
	}
	if l.apiURL == "" {
		return "", errors.New("missing LLAMA_API_URL")
	}

	payload := map[string]interface{}{
		"model": l.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.4,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		l.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.New("llama api error: " + string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", errors.New("empty llama response")
	}

	return result.Choices[0].Message.Content, nil
}
