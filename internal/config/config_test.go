package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupDefaults(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()
	assert.Equal(t, 64, Settings.Search.TTSizeMB)
	assert.Equal(t, 100, Settings.Eval.PawnValue)
	assert.Equal(t, 16, Settings.Book.MaxPlies)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	Setup()
	Settings.Search.TTSizeMB = 1
	Setup()
	assert.Equal(t, 1, Settings.Search.TTSizeMB, "second Setup call must be a no-op")
	initialized = false
}
