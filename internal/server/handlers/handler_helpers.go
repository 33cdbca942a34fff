package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"decline-mail-web/internal/domain"
)

// errorResponse は API のエラーレスポンスです。
type errorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message,omitempty"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// writeJSON は値を JSON としてレスポンスに書き込みます。
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Failed to write response", "error", err)
	}
}

// writeError はエラーの種類に応じてステータスコードを決定し、エラーレスポンスを返します。
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{
			Error:  verr.FirstMessage(),
			Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrConfiguration):
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{
			Error:   "サーバーの設定に問題があります。管理者にお問い合わせください。",
			Message: err.Error(),
		})
	default:
		slog.ErrorContext(r.Context(), "Unexpected error while handling request", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{
			Error:   "メールの生成に失敗しました。",
			Message: err.Error(),
		})
	}
}

// decodeRequest はリクエストボディを DeclineRequest に変換します。
func decodeRequest(w http.ResponseWriter, r *http.Request) (domain.DeclineRequest, error) {
	var req domain.DeclineRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.DeclineRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

// writeBadRequest は解析不能なリクエストに対するレスポンスを返します。上限を超えるボディは 413 とします。
func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		slog.WarnContext(r.Context(), "Request body too large", "limit", tooLarge.Limit)
		writeJSON(w, r, http.StatusRequestEntityTooLarge, errorResponse{
			Error:   "入力内容が長すぎます。受信メールや追加メッセージを短くしてください。",
			Message: err.Error(),
		})
		return
	}

	slog.WarnContext(r.Context(), "Failed to parse request body", "error", err)
	writeJSON(w, r, http.StatusBadRequest, errorResponse{
		Error:   "リクエストの解析に失敗しました。",
		Message: err.Error(),
	})
}
