package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"decline-mail-web/internal/domain"
	"decline-mail-web/internal/fallback"
	"decline-mail-web/internal/metrics"

	"github.com/google/uuid"
)

// declineExecution は一回のリクエスト実行に関する状態 (リクエストID や現在の状態) を保持します。
type declineExecution struct {
	pipeline  *DeclinePipeline
	req       domain.DeclineRequest
	mode      string
	requestID string
	state     State
}

// remoteOutcome は AI 生成の結果を表すタグ付きの値です。err が nil のときのみ text が有効です。
type remoteOutcome struct {
	text string
	err  error
}

func (o remoteOutcome) ok() bool { return o.err == nil }

func newExecution(p *DeclinePipeline, req domain.DeclineRequest, mode string) *declineExecution {
	return &declineExecution{
		pipeline:  p,
		req:       req,
		mode:      mode,
		requestID: uuid.NewString(),
		state:     StateIdle,
	}
}

func (e *declineExecution) transition(ctx context.Context, next State) {
	slog.DebugContext(ctx, "Pipeline state changed", "request_id", e.requestID, "from", e.state, "to", next)
	e.state = next
}

// run は検証・AI 生成・フォールバックの順に処理を進めます。validate が false の場合は Requesting から開始します。
func (e *declineExecution) run(ctx context.Context, validate bool) (Result, error) {
	if validate {
		e.transition(ctx, StateValidating)
		if err := e.req.Validate(); err != nil {
			e.transition(ctx, StateRejected)
			e.pipeline.recorder.ObserveOutcome(metrics.OutcomeRejected)
			slog.InfoContext(ctx, "Decline request rejected", "request_id", e.requestID, "error", err)
			return e.result("", ""), err
		}
	}

	e.transition(ctx, StateRequesting)
	outcome := e.requestRemote(ctx)

	if outcome.ok() {
		e.transition(ctx, StateSucceeded)
		e.pipeline.recorder.ObserveOutcome(metrics.OutcomeRemote)
		slog.InfoContext(ctx, "Decline email generated", "request_id", e.requestID, "source", SourceRemote, "mode", e.mode)
		return e.result(outcome.text, SourceRemote), nil
	}

	// 設定の不備はフォールバックで隠さず、呼び出し元にそのまま返します。
	if errors.Is(outcome.err, domain.ErrConfiguration) {
		e.pipeline.recorder.ObserveOutcome(metrics.OutcomeError)
		slog.ErrorContext(ctx, "Remote generation is misconfigured", "request_id", e.requestID, "error", outcome.err)
		return e.result("", ""), fmt.Errorf("remote generation aborted: %w", outcome.err)
	}

	if e.pipeline.remote != nil {
		slog.WarnContext(ctx, "Remote generation failed, falling back to template", "request_id", e.requestID, "error", outcome.err)
		e.pipeline.notifyFallback(ctx, e, outcome.err)
	}

	email := fallback.Generate(e.req)
	e.transition(ctx, StateFallbackSucceeded)
	e.pipeline.recorder.ObserveOutcome(metrics.OutcomeFallback)
	slog.InfoContext(ctx, "Decline email generated", "request_id", e.requestID, "source", SourceTemplate, "mode", e.mode)
	return e.result(email, SourceTemplate), nil
}

// requestRemote は AI 生成を 1 回だけ試みます。テンプレート専用モードでは通信せずに失敗を返します。
func (e *declineExecution) requestRemote(ctx context.Context) remoteOutcome {
	if e.pipeline.remote == nil {
		return remoteOutcome{err: fmt.Errorf("%w: template-only mode", domain.ErrRemoteUnavailable)}
	}

	start := time.Now()
	text, err := e.pipeline.remote.Generate(ctx, e.req, e.req.Variation)
	if !errors.Is(err, domain.ErrConfiguration) {
		e.pipeline.recorder.ObserveRemoteCall(err == nil, time.Since(start))
	}
	return remoteOutcome{text: text, err: err}
}

func (e *declineExecution) result(email string, source Source) Result {
	return Result{
		Email:     email,
		Source:    source,
		State:     e.state,
		RequestID: e.requestID,
		Variation: e.req.Variation,
	}
}
