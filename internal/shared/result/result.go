// Package result provides the response envelope shared by every endpoint.
//
// A Result is either a success carrying a value or a failure carrying an
// error message. It serializes as {"ok": <value>} or {"error": "<message>"}.
package result

import (
	"encoding/json"
	"errors"
)

// Result はエンドポイント共通の成功/失敗エンベロープです。
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// OK は成功結果を生成します。
func OK[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail は失敗結果を生成します。errがnilの場合は汎用メッセージを使用します。
func Fail[T any](err error) Result[T] {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result[T]{err: msg}
}

// From は (値, エラー) の組をResultに変換します。
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return OK(v)
}

// Map は成功値をfで変換します。失敗はそのまま引き継がれます。
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return Result[U]{err: r.err}
	}
	return OK(f(r.value))
}

// IsOK reports whether r holds a value.
func (r Result[T]) IsOK() bool { return r.ok }

// Value returns the success value and whether it is present.
func (r Result[T]) Value() (T, bool) { return r.value, r.ok }

// Err returns the failure message, or "" on success.
func (r Result[T]) Err() string { return r.err }

// ErrPtr returns the failure message as a pointer, nil on success.
func (r Result[T]) ErrPtr() *string {
	if r.ok {
		return nil
	}
	msg := r.err
	return &msg
}

type okBody[T any] struct {
	OK T `json:"ok"`
}

type errBody struct {
	Error string `json:"error"`
}

// MarshalJSON implements json.Marshaler.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(okBody[T]{OK: r.value})
	}
	return json.Marshal(errBody{Error: r.err})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		OK    json.RawMessage `json:"ok"`
		Error *string         `json:"error"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.Error != nil:
		*r = Result[T]{err: *raw.Error}
	case len(raw.OK) > 0:
		var v T
		if err := json.Unmarshal(raw.OK, &v); err != nil {
			return err
		}
		*r = OK(v)
	default:
		return errors.New("result: neither ok nor error present")
	}
	return nil
}
