package storeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"go-storefront/internal/pkg/apperror"
)

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) HTTPStatus() int       { return http.StatusBadGateway }
func (e *NetworkError) ErrorCode() string     { return apperror.CodeUpstream }
func (e *NetworkError) PublicMessage() string { return "Store service is unreachable, please try again" }

// ServerRejection is a non-2xx answer from the backend.
type ServerRejection struct {
	Op      string
	Status  int
	Message string
}

func (e *ServerRejection) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: rejected with status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: rejected with status %d: %s", e.Op, e.Status, e.Message)
}

func (e *ServerRejection) HTTPStatus() int {
	switch {
	case e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden,
		e.Status == http.StatusNotFound, e.Status == http.StatusConflict,
		e.Status == http.StatusTooManyRequests:
		return e.Status
	case e.Status >= 400 && e.Status < 500:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (e *ServerRejection) ErrorCode() string {
	switch e.Status {
	case http.StatusUnauthorized:
		return apperror.CodeUnauthorized
	case http.StatusForbidden:
		return apperror.CodeForbidden
	case http.StatusNotFound:
		return apperror.CodeNotFound
	case http.StatusConflict:
		return apperror.CodeConflict
	case http.StatusTooManyRequests:
		return apperror.CodeTooManyRequest
	}
	if e.Status >= 400 && e.Status < 500 {
		return apperror.CodeInvalidInput
	}
	return apperror.CodeUpstream
}

func (e *ServerRejection) PublicMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status == http.StatusUnauthorized {
		return "Not authorized, please sign in"
	}
	return "Store service rejected the request"
}

// DecodeError is a 2xx answer whose body does not match the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) HTTPStatus() int       { return http.StatusBadGateway }
func (e *DecodeError) ErrorCode() string     { return apperror.CodeUpstream }
func (e *DecodeError) PublicMessage() string { return "Store service returned an unexpected response" }

const maxRejectionMessage = 300

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func newServerRejection(op string, status int, body []byte) *ServerRejection {
	var payload struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			switch v := payload.Error.(type) {
			case string:
				msg = v
			case map[string]any:
				if m, ok := v["message"].(string); ok {
					msg = m
				}
			}
		}
	}
	msg = truncateUTF8(strings.TrimSpace(msg), maxRejectionMessage)
	return &ServerRejection{Op: op, Status: status, Message: msg}
}

// IsUnauthorized reports a backend 401, which the UI treats as "sign in again".
func IsUnauthorized(err error) bool {
	var rej *ServerRejection
	return errors.As(err, &rej) && rej.Status == http.StatusUnauthorized
}

// IsNotFound reports a backend 404.
func IsNotFound(err error) bool {
	var rej *ServerRejection
	return errors.As(err, &rej) && rej.Status == http.StatusNotFound
}
