package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"decline-mail-web/internal/domain"
	"decline-mail-web/internal/fallback"
	"decline-mail-web/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	mu         sync.Mutex
	text       string
	err        error
	calls      int
	variations []float64
}

func (f *fakeRemote) Generate(_ context.Context, _ domain.DeclineRequest, variation float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.variations = append(f.variations, variation)
	return f.text, f.err
}

type fakeNotifier struct {
	calls []domain.NotificationRequest
	err   error
}

func (f *fakeNotifier) NotifyFallback(_ context.Context, _ error, req domain.NotificationRequest) error {
	f.calls = append(f.calls, req)
	return f.err
}

type fakeRecorder struct {
	outcomes    []string
	remoteCalls int
}

func (f *fakeRecorder) ObserveOutcome(outcome string) { f.outcomes = append(f.outcomes, outcome) }

func (f *fakeRecorder) ObserveRemoteCall(bool, time.Duration) { f.remoteCalls++ }

func scenarioRequest() domain.DeclineRequest {
	return domain.DeclineRequest{
		CompanyName:       "ACME株式会社",
		ContactName:       "山田太郎",
		ServiceName:       "SalesTool",
		ReasonCode:        "budget",
		SenderName:        "鈴木一郎",
		SenderCompany:     "商事",
		AdditionalMessage: "",
	}
}

func failingRemote() *fakeRemote {
	return &fakeRemote{err: fmt.Errorf("%w: API returned 503", domain.ErrRemoteUnavailable)}
}

func TestExecute_RemoteSuccess(t *testing.T) {
	remote := &fakeRemote{text: "AIが生成したメール"}
	rec := &fakeRecorder{}
	p := NewDeclinePipeline(remote, &fakeNotifier{}, rec)

	res, err := p.Execute(context.Background(), scenarioRequest())

	require.NoError(t, err)
	assert.Equal(t, "AIが生成したメール", res.Email)
	assert.Equal(t, SourceRemote, res.Source)
	assert.Equal(t, StateSucceeded, res.State)
	assert.NotEmpty(t, res.RequestID)
	assert.Equal(t, []string{metrics.OutcomeRemote}, rec.outcomes)
	assert.Equal(t, 1, rec.remoteCalls)
}

// The template carries recipient, reason detail and signature when the remote fails.
func TestExecute_FallbackOnRemoteFailure(t *testing.T) {
	notifier := &fakeNotifier{}
	p := NewDeclinePipeline(failingRemote(), notifier, nil)

	res, err := p.Execute(context.Background(), scenarioRequest())

	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, res.Source)
	assert.Equal(t, StateFallbackSucceeded, res.State)
	assert.Equal(t, fallback.Generate(scenarioRequest()), res.Email)
	assert.Contains(t, res.Email, "ACME株式会社")
	assert.Contains(t, res.Email, "山田太郎")
	assert.Contains(t, res.Email, fallback.ReasonDetail("budget"))
	assert.Contains(t, res.Email, fallback.Delimiter+"\n商事\n鈴木一郎\n"+fallback.Delimiter)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, res.RequestID, notifier.calls[0].RequestID)
	assert.Equal(t, "generate", notifier.calls[0].ExecutionMode)
}

// Without a service name the subject uses the placeholder.
func TestExecute_FallbackWithoutService(t *testing.T) {
	req := scenarioRequest()
	req.ServiceName = ""
	p := NewDeclinePipeline(failingRemote(), nil, nil)

	res, err := p.Execute(context.Background(), req)

	require.NoError(t, err)
	subject := strings.SplitN(res.Email, "\n", 2)[0]
	assert.Contains(t, subject, "貴サービス")
	assert.NotContains(t, subject, "「」")
}

// Unknown reason codes get the generic detail sentence.
func TestExecute_UnknownReasonCode(t *testing.T) {
	req := scenarioRequest()
	req.ReasonCode = "unknown-code-xyz"
	p := NewDeclinePipeline(failingRemote(), nil, nil)

	res, err := p.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Contains(t, res.Email, fallback.GenericReasonDetail)
}

func TestExecute_RejectsWithoutCallingGenerators(t *testing.T) {
	remote := &fakeRemote{text: "should not be used"}
	notifier := &fakeNotifier{}
	rec := &fakeRecorder{}
	p := NewDeclinePipeline(remote, notifier, rec)

	req := scenarioRequest()
	req.CompanyName = "  "
	res, err := p.Execute(context.Background(), req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("companyName"))
	assert.Equal(t, StateRejected, res.State)
	assert.Empty(t, res.Email)
	assert.Equal(t, 0, remote.calls)
	assert.Empty(t, notifier.calls)
	assert.Equal(t, []string{metrics.OutcomeRejected}, rec.outcomes)
}

func TestExecute_ConfigurationErrorIsTerminal(t *testing.T) {
	remote := &fakeRemote{err: fmt.Errorf("%w: completion API key is not set", domain.ErrConfiguration)}
	notifier := &fakeNotifier{}
	rec := &fakeRecorder{}
	p := NewDeclinePipeline(remote, notifier, rec)

	res, err := p.Execute(context.Background(), scenarioRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
	assert.Empty(t, res.Email)
	assert.Empty(t, notifier.calls)
	assert.Equal(t, 0, rec.remoteCalls)
	assert.Equal(t, []string{metrics.OutcomeError}, rec.outcomes)
}

func TestExecute_TemplateOnlyMode(t *testing.T) {
	notifier := &fakeNotifier{}
	p := NewDeclinePipeline(nil, notifier, nil)

	res, err := p.Execute(context.Background(), scenarioRequest())

	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, res.Source)
	assert.Equal(t, StateFallbackSucceeded, res.State)
	assert.Empty(t, notifier.calls, "template-only mode is not a failure")
}

func TestExecute_NotifierFailureDoesNotAffectResult(t *testing.T) {
	p := NewDeclinePipeline(failingRemote(), &fakeNotifier{err: errors.New("slack down")}, nil)

	res, err := p.Execute(context.Background(), scenarioRequest())

	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, res.Source)
}

func TestExecute_TrimsInput(t *testing.T) {
	req := scenarioRequest()
	req.CompanyName = "  ACME株式会社 \n"
	p := NewDeclinePipeline(failingRemote(), nil, nil)

	res, err := p.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Contains(t, res.Email, "\nACME株式会社\n")
}

func TestRegenerate_IncrementsVariationWithoutValidation(t *testing.T) {
	remote := &fakeRemote{text: "v2"}
	p := NewDeclinePipeline(remote, nil, nil)

	prev := scenarioRequest()
	prev.Variation = 2
	prev.CompanyName = "" // never re-validated

	res, err := p.Regenerate(context.Background(), prev)

	require.NoError(t, err)
	assert.Equal(t, "v2", res.Email)
	assert.Equal(t, 3.0, res.Variation)
	assert.Equal(t, []float64{3}, remote.variations)
	assert.Equal(t, 2.0, prev.Variation)
}

func TestRegenerate_FallsBack(t *testing.T) {
	notifier := &fakeNotifier{}
	p := NewDeclinePipeline(failingRemote(), notifier, nil)

	res, err := p.Regenerate(context.Background(), scenarioRequest())

	require.NoError(t, err)
	assert.Equal(t, StateFallbackSucceeded, res.State)
	assert.Equal(t, fallback.Generate(scenarioRequest()), res.Email)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "regenerate", notifier.calls[0].ExecutionMode)
}

func TestExecute_RequestIDsAreUnique(t *testing.T) {
	p := NewDeclinePipeline(nil, nil, nil)

	a, err := p.Execute(context.Background(), scenarioRequest())
	require.NoError(t, err)
	b, err := p.Execute(context.Background(), scenarioRequest())
	require.NoError(t, err)

	assert.NotEqual(t, a.RequestID, b.RequestID)
	assert.Equal(t, a.Email, b.Email)
}
