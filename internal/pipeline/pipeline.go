package pipeline

import (
	"context"
	"log/slog"

	"decline-mail-web/internal/adapters"
	"decline-mail-web/internal/domain"
	"decline-mail-web/internal/metrics"
)

// State は生成処理の進行状態です。
type State string

const (
	StateIdle              State = "idle"
	StateValidating        State = "validating"
	StateRequesting        State = "requesting"
	StateSucceeded         State = "succeeded"
	StateFallbackSucceeded State = "fallback_succeeded"
	StateRejected          State = "rejected"
)

// Source は生成結果の出どころです。
type Source string

const (
	SourceRemote   Source = "ai"
	SourceTemplate Source = "template"
)

// Result は 1 回の生成の結果です。
type Result struct {
	Email     string
	Source    Source
	State     State
	RequestID string
	Variation float64
}

// Pipeline はお断りメール生成の入口を抽象化します。
type Pipeline interface {
	Execute(ctx context.Context, req domain.DeclineRequest) (Result, error)
	Regenerate(ctx context.Context, prev domain.DeclineRequest) (Result, error)
}

// DeclinePipeline は AI 生成を試み、失敗時にはテンプレート生成へ切り替えるオーケストレーターです。
// リクエストごとの状態は持たないため、複数のリクエストから同時に呼び出せます。
type DeclinePipeline struct {
	remote   adapters.RemoteGenerator
	notifier adapters.FallbackNotifier
	recorder metrics.Recorder
}

// NewDeclinePipeline はパイプラインを初期化します。
// remote が nil の場合は AI を呼ばず、常にテンプレート生成を行います。
func NewDeclinePipeline(remote adapters.RemoteGenerator, notifier adapters.FallbackNotifier, recorder metrics.Recorder) *DeclinePipeline {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &DeclinePipeline{
		remote:   remote,
		notifier: notifier,
		recorder: recorder,
	}
}

// Execute はリクエストを検証してから生成を行います。
// 必須項目が不足している場合は *domain.ValidationError を返し、生成処理は一切呼び出しません。
func (p *DeclinePipeline) Execute(ctx context.Context, req domain.DeclineRequest) (Result, error) {
	exec := newExecution(p, req.Normalize(), "generate")
	return exec.run(ctx, true)
}

// Regenerate は直前の有効なリクエストを Variation を 1 進めて再生成します。再検証は行いません。
func (p *DeclinePipeline) Regenerate(ctx context.Context, prev domain.DeclineRequest) (Result, error) {
	exec := newExecution(p, prev.NextVariation(), "regenerate")
	slog.DebugContext(ctx, "Regenerating decline email", "request_id", exec.requestID, "variation", exec.req.Variation)
	return exec.run(ctx, false)
}
