package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"decline-mail-web/internal/domain"
	"decline-mail-web/internal/prompt"

	"github.com/shouni/go-http-kit/httpkit"
)

const (
	// MaxOutputTokens は 1 回の生成で要求する最大トークン数です。
	MaxOutputTokens = 1500

	baseTemperature = 0.7
	variationStep   = 0.1
	minTemperature  = 0.0
	maxTemperature  = 2.0
)

// RemoteGenerator は AI によるメール生成を抽象化します。
type RemoteGenerator interface {
	Generate(ctx context.Context, req domain.DeclineRequest, variation float64) (string, error)
}

// CompletionConfig は OpenAI 互換 API への接続設定です。
type CompletionConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// CompletionAdapter は OpenAI 互換の Chat Completions API を使用した RemoteGenerator の実装です。
type CompletionAdapter struct {
	httpClient httpkit.Doer
	endpoint   string
	apiKey     string
	model      string
}

// NewCompletionAdapter はアダプターを初期化します。
// httpClient の Do はリトライを行わないため、1 回の生成につき API 呼び出しは 1 回です。
func NewCompletionAdapter(cfg CompletionConfig, httpClient httpkit.Doer) *CompletionAdapter {
	return &CompletionAdapter{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Temperature は variation から temperature を算出します。結果は [0, 2] に収まるよう丸めます。
func Temperature(variation float64) float64 {
	t := baseTemperature + variation*variationStep
	if t < minTemperature {
		return minTemperature
	}
	if t > maxTemperature {
		return maxTemperature
	}
	return t
}

// Generate はプロンプトを組み立てて API を 1 回だけ呼び出し、最初の候補の本文をそのまま返します。
// API キーが無い場合は通信せずに domain.ErrConfiguration を返し、
// それ以外の失敗はすべて domain.ErrRemoteUnavailable を包んで返します。
func (a *CompletionAdapter) Generate(ctx context.Context, req domain.DeclineRequest, variation float64) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("%w: completion API key is not set", domain.ErrConfiguration)
	}

	payload := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.SystemInstruction},
			{Role: "user", Content: prompt.Build(req)},
		},
		Temperature: Temperature(variation),
		MaxTokens:   MaxOutputTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", domain.ErrRemoteUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", domain.ErrRemoteUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: request to %s failed: %v", domain.ErrRemoteUnavailable, a.endpoint, err)
	}

	// 非 2xx とサイズ超過は HandleResponse がエラーとして返します。
	respBody, err := httpkit.HandleResponse(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", domain.ErrRemoteUnavailable, err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrRemoteUnavailable)
	}

	content := result.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrRemoteUnavailable)
	}

	return content, nil
}
