package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_InitializesDefault(t *testing.T) {
	log := Get()
	require.NotNil(t, log)
}

func TestInit_OnlyOnce(t *testing.T) {
	Init(false)
	first := Get()

	// Further Init calls must not replace the logger
	Init(true)
	InitWithFile(true, filepath.Join(t.TempDir(), "app.log"))

	assert.Same(t, first, Get())
}

func TestSync_NoPanic(t *testing.T) {
	Get()
	Sync()
}
