package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptions_LogFallsBackToDiscard(t *testing.T) {
	o := DefaultOptions()
	require.Nil(t, o.Logger)
	require.NotNil(t, o.Log())
}

func TestOptions_LogUsesConfiguredLogger(t *testing.T) {
	o := DefaultOptions()
	custom := slog.Default()
	o.Logger = custom
	require.Same(t, custom, o.Log())
}
