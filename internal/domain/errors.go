package domain

import (
	"errors"
	"strings"
)

var (
	// ErrConfiguration は生成に必要な設定 (API キー等) が欠けていることを示します。
	// 呼び出し元にそのまま返され、ネットワーク通信は行われません。
	ErrConfiguration = errors.New("configuration error")

	// ErrRemoteUnavailable は AI 生成 API の呼び出しに失敗したことを示します。
	// パイプライン内でテンプレート生成にフォールバックし、呼び出し元には返しません。
	ErrRemoteUnavailable = errors.New("remote generation unavailable")
)

// FieldError は入力項目ひとつ分の検証エラーです。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError は必須項目の不足をまとめて表します。
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, " ")
}

// FirstMessage は最初に検出されたエラーのメッセージを返します。
func (e *ValidationError) FirstMessage() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0].Message
}

// Has は指定した項目がエラーに含まれているかを返します。
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
