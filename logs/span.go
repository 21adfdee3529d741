package logs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Span identifies one program execution across log records and errors.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}

func spanOf(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}

// WrapSpan tags err with the span of ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := spanOf(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}

// spanHandler adds the span of the record's context as an attribute.
type spanHandler struct {
	slog.Handler
}

func (h spanHandler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := spanOf(ctx); ok {
		record.Add("span", span)
	}
	return h.Handler.Handle(ctx, record)
}

func (h spanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return spanHandler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h spanHandler) WithGroup(name string) slog.Handler {
	return spanHandler{
		Handler: h.Handler.WithGroup(name),
	}
}
