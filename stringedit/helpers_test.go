package stringedit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iw2rmb/fieldedit/buffer"
	"github.com/iw2rmb/fieldedit/internal/grapheme"
)

// attachEditing attaches e to a fresh buffer and focuses it.
func attachEditing[V any](t *testing.T, e *Editor[V]) *buffer.Buffer {
	t.Helper()
	b := buffer.New("", buffer.Options{})
	require.NoError(t, e.Attach(b))
	b.BeginEditing()
	return b
}

// typeText proposes s one grapheme at a time, like a keyboard.
func typeText(b *buffer.Buffer, s string) {
	for _, g := range grapheme.Split(s) {
		b.InsertText(g)
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func observedLogger(level zap.AtomicLevel) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}
