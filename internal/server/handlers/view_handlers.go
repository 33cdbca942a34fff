package handlers

import (
	"net/http"

	"decline-mail-web/internal/domain"
	"decline-mail-web/internal/lexicon"
)

type lexiconResponse struct {
	Reasons []lexicon.Entry `json:"reasons"`
	Tones   []lexicon.Entry `json:"tones"`
}

// Reasons はフォームの選択肢となる理由と文体の一覧を返します。
func (h *Handler) Reasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, lexiconResponse{
		Reasons: lexicon.Reasons(),
		Tones:   lexicon.Tones(),
	})
}

// Samples は入力例を返します。
func (h *Handler) Samples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, domain.Samples())
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
