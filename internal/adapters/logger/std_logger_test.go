package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomStdLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig(&buf)
	cfg.AsyncWrite = false
	cfg.JsonFormat = true

	log, err := NewCustomStdLogger(cfg)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		log.Info("header row detected", "row", 2, "matches", 3)
		log.Debug("row assessed", "row", 0)
	})
	assert.NoError(t, log.Close())
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	assert.NotPanics(t, func() {
		log.Debug("ignored", "k", "v")
		log.Info("ignored")
		log.Warn("ignored")
		log.Error("ignored")
	})
	assert.NoError(t, log.Close())
}
