package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesRoleAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("client-test", &buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "client-test", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "func")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() { l.Error().Msg("ignored") })
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent", &buf)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("flow", "login").Logger()
	parent.Info().Msg("from parent")

	assert.NotContains(t, buf.String(), "login")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx", &buf)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("via context")

	assert.Contains(t, buf.String(), "via context")
	assert.Contains(t, buf.String(), `"role":"ctx"`)
}

func TestFromContext_NeverNil(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
	assert.NotPanics(t, func() { got.Info().Msg("noop") })
}
