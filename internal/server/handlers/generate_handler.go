package handlers

import (
	"net/http"

	"decline-mail-web/internal/pipeline"
)

// generateResponse は生成 API の成功レスポンスです。
type generateResponse struct {
	EmailContent string          `json:"emailContent"`
	Success      bool            `json:"success"`
	Source       pipeline.Source `json:"source"`
	RequestID    string          `json:"requestId"`
	Variation    float64         `json:"variation"`
}

// HandleGenerate は入力を検証し、お断りメールを生成します。
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	res, err := h.pipeline.Execute(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newGenerateResponse(res))
}

// HandleRegenerate は直前のリクエストを受け取り、Variation を進めて再生成します。
// パイプライン側は再検証を行わないため、HTTP 経由の入力はここで検証します。
func (h *Handler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.pipeline.Regenerate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newGenerateResponse(res))
}

func newGenerateResponse(res pipeline.Result) generateResponse {
	return generateResponse{
		EmailContent: res.Email,
		Success:      true,
		Source:       res.Source,
		RequestID:    res.RequestID,
		Variation:    res.Variation,
	}
}
