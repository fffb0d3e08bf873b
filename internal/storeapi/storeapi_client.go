package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const maxBodyBytes = 4 << 20

// Client talks to the remote store REST backend. A zero token means the
// call is sent without an Authorization header.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
	log      *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type validatable interface {
	Validate() error
}

func (c *Client) doJSON(ctx context.Context, op, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, op, method, path, token, "application/json", body, out)
}

func (c *Client) doMultipart(ctx context.Context, op, method, path, token string, fields map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("%s: encode form: %w", op, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: encode form: %w", op, err)
	}
	return c.do(ctx, op, method, path, token, w.FormDataContentType(), &buf, out)
}

func (c *Client) do(ctx context.Context, op, method, path, token, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("store backend unreachable", zap.String("op", op), zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	c.log.Debug("store backend call",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newServerRejection(op, resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if _, lenient := out.(*json.RawMessage); lenient {
			return nil
		}
		return &DecodeError{Op: op, Err: io.ErrUnexpectedEOF}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	if err := c.check(out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// check runs struct tags and Validate methods over the decoded payload.
func (c *Client) check(out any) error {
	v := reflect.Indirect(reflect.ValueOf(out))
	switch v.Kind() {
	case reflect.Struct:
		if err := c.validate.Struct(v.Interface()); err != nil {
			return err
		}
		if vv, ok := v.Interface().(validatable); ok {
			return vv.Validate()
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			elem := reflect.Indirect(v.Index(i))
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := c.validate.Struct(elem.Interface()); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			if vv, ok := elem.Interface().(validatable); ok {
				if err := vv.Validate(); err != nil {
					return fmt.Errorf("item %d: %w", i, err)
				}
			}
		}
	}
	return nil
}
