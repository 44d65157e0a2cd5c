package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/quill/internal/config"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

func TestConfig_GetSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path  string
		value string
	}{
		{"home", "/tmp/quill"},
		{"signing.strict_fields", "true"},
		{"signing.output", "fields"},
		{"security.memory_lock", "false"},
		{"output.default_format", "json"},
		{"output.color", "never"},
		{"output.verbose", "true"},
		{"logging.level", "debug"},
		{"logging.file", "/tmp/quill.log"},
		{"logging.json", "true"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			cfg := config.Defaults()
			require.NoError(t, cfg.Set(tc.path, tc.value))

			got, err := cfg.Get(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.value, got)
		})
	}

	assert.Len(t, config.Keys(), len(tests))
}

func TestConfig_SetInvalidValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path  string
		value string
	}{
		{"signing.output", "base64"},
		{"signing.strict_fields", "maybe"},
		{"security.memory_lock", "2"},
		{"output.default_format", "yaml"},
		{"output.color", "sometimes"},
		{"logging.level", "trace"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			cfg := config.Defaults()
			err := cfg.Set(tc.path, tc.value)
			require.ErrorIs(t, err, quillerr.ErrConfigInvalid)
			assert.Equal(t, config.Defaults(), cfg)
		})
	}
}

func TestConfig_UnknownKey(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()

	_, err := cfg.Get("signing.outptu")
	require.ErrorIs(t, err, quillerr.ErrUnknownConfigKey)

	var qe *quillerr.QuillError
	require.ErrorAs(t, err, &qe)
	assert.Contains(t, qe.Suggestion, "signing.output")

	err = cfg.Set("networks.eth.rpc", "x")
	require.ErrorIs(t, err, quillerr.ErrUnknownConfigKey)
}

func TestSuggestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "logging.level", config.SuggestKey("loging.level"))
	assert.Equal(t, "home", config.SuggestKey("hom"))
	assert.Empty(t, config.SuggestKey("completely.unrelated.key"))
}
