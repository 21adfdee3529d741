package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
		logger.Debug("hidden")
	})
	if !strings.Contains(buf.String(), "hello=world!") {
		t.Fatalf("got %s", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	defer level.Set(slog.LevelWarn)
	SetLevel("debug")
	if level.Level() != slog.LevelDebug {
		t.Fatalf("got %v", level.Level())
	}
	SetLevel("nonsense")
	if level.Level() != slog.LevelDebug {
		t.Fatalf("got %v", level.Level())
	}
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("boom")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span: abc") {
		t.Fatalf("got %v", err)
	}
}
