package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"decline-mail-web/internal/domain"
	"decline-mail-web/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	executeErr  error
	executed    []domain.DeclineRequest
	regenerated []domain.DeclineRequest
}

func (f *fakePipeline) Execute(_ context.Context, req domain.DeclineRequest) (pipeline.Result, error) {
	f.executed = append(f.executed, req)
	if f.executeErr != nil {
		return pipeline.Result{}, f.executeErr
	}
	if err := req.Normalize().Validate(); err != nil {
		return pipeline.Result{State: pipeline.StateRejected}, err
	}
	return pipeline.Result{
		Email:     "件名: テスト",
		Source:    pipeline.SourceTemplate,
		State:     pipeline.StateFallbackSucceeded,
		RequestID: "req-1",
		Variation: req.Variation,
	}, nil
}

func (f *fakePipeline) Regenerate(_ context.Context, prev domain.DeclineRequest) (pipeline.Result, error) {
	f.regenerated = append(f.regenerated, prev)
	next := prev.NextVariation()
	return pipeline.Result{
		Email:     "件名: 再生成",
		Source:    pipeline.SourceRemote,
		State:     pipeline.StateSucceeded,
		RequestID: "req-2",
		Variation: next.Variation,
	}, nil
}

const validBody = `{
	"companyName": "ACME株式会社",
	"contactName": "山田太郎",
	"serviceName": "SalesTool",
	"reason": "budget",
	"myName": "鈴木一郎",
	"myCompany": "商事"
}`

func doRequest(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleGenerate_Success(t *testing.T) {
	fp := &fakePipeline{}
	h := NewHandler(fp)

	rec := doRequest(t, h.HandleGenerate, validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	body := decodeBody(t, rec)
	assert.Equal(t, "件名: テスト", body["emailContent"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "template", body["source"])
	assert.Equal(t, "req-1", body["requestId"])

	require.Len(t, fp.executed, 1)
	assert.Equal(t, "ACME株式会社", fp.executed[0].CompanyName)
	assert.Equal(t, "鈴木一郎", fp.executed[0].SenderName)
	assert.Equal(t, "商事", fp.executed[0].SenderCompany)
}

func TestHandleGenerate_ValidationError(t *testing.T) {
	h := NewHandler(&fakePipeline{})

	rec := doRequest(t, h.HandleGenerate, `{"contactName":"山田太郎"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "会社名を入力してください。", body["error"])
	fields, ok := body["fields"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, fields)
}

func TestHandleGenerate_MalformedJSON(t *testing.T) {
	fp := &fakePipeline{}
	h := NewHandler(fp)

	rec := doRequest(t, h.HandleGenerate, `{"companyName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fp.executed)
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	fp := &fakePipeline{}
	h := NewHandler(fp)

	body := `{"companyName":"ACME","receivedEmail":"` + strings.Repeat("あ", maxRequestBodyBytes) + `"}`
	rec := doRequest(t, h.HandleGenerate, body)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["error"])
	assert.Empty(t, fp.executed)
}

func TestHandleGenerate_ConfigurationError(t *testing.T) {
	h := NewHandler(&fakePipeline{executeErr: fmt.Errorf("wrap: %w", domain.ErrConfiguration)})

	rec := doRequest(t, h.HandleGenerate, validBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["error"])
	assert.Contains(t, body["message"], "configuration")
}

func TestHandleRegenerate_ValidatesBeforeRegenerating(t *testing.T) {
	fp := &fakePipeline{}
	h := NewHandler(fp)

	rec := doRequest(t, h.HandleRegenerate, `{"companyName":"ACME株式会社"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fp.regenerated)
}

func TestHandleRegenerate_AdvancesVariation(t *testing.T) {
	fp := &fakePipeline{}
	h := NewHandler(fp)

	body := strings.Replace(validBody, `"reason": "budget"`, `"reason": "budget", "variation": 1`, 1)
	rec := doRequest(t, h.HandleRegenerate, body)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, 2.0, out["variation"])
	assert.Equal(t, "ai", out["source"])
	require.Len(t, fp.regenerated, 1)
	assert.Equal(t, 1.0, fp.regenerated[0].Variation)
}

func TestReasons(t *testing.T) {
	h := NewHandler(&fakePipeline{})
	rec := httptest.NewRecorder()

	h.Reasons(rec, httptest.NewRequest(http.MethodGet, "/api/reasons", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out lexiconResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Reasons)
	assert.Len(t, out.Tones, 3)
}

func TestSamples(t *testing.T) {
	h := NewHandler(&fakePipeline{})
	rec := httptest.NewRecorder()

	h.Samples(rec, httptest.NewRequest(http.MethodGet, "/api/samples", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out []domain.DeclineRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, domain.Samples(), out)
}

func TestHealthz(t *testing.T) {
	h := NewHandler(&fakePipeline{})
	rec := httptest.NewRecorder()

	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
