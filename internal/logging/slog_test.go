package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "k", "v")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err")

	out := buf.String()
	for _, want := range []string{"dbg", "inf", "wrn", "err", "k=v"} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelInfo)

	child := log.With("component", "session")
	child.Info(context.Background(), "hello")

	require.True(t, strings.Contains(buf.String(), "component=session"))
}

func TestNopLogger_DoesNothing(t *testing.T) {
	log := NewNopLogger()
	// must not panic and With must keep discarding
	log.With("a", 1).Error(context.Background(), "ignored")
}
