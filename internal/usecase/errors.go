package usecase

import (
	"errors"
	"fmt"
	"strings"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

var (
	// 凍結済みカートへの変更
	ErrCartFrozen = errors.New("cart frozen")

	// 既に使われているユーザー名での登録
	ErrDuplicateUser = errors.New("username already taken")

	// チェックアウトのトランザクション失敗（ロールバック済み）
	ErrCheckoutFailed = errors.New("checkout failed")
)

// フォーム入力の検証エラー。項目ごとのメッセージを持つ
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	return "validation failed: " + strings.Join(names, ", ")
}

func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
