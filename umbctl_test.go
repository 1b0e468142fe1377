package main

import (
	"testing"

	"github.com/DRuggeri/umbctl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInterface(t *testing.T) {
	cfg := &config.Config{Interface: "umb0"}

	// the argument wins over the configured default
	name, err := resolveInterface("umb1", cfg)
	require.NoError(t, err)
	assert.Equal(t, "umb1", name)

	// no argument falls back to the configuration
	name, err = resolveInterface("", cfg)
	require.NoError(t, err)
	assert.Equal(t, "umb0", name)

	// neither is a usage error
	_, err = resolveInterface("", &config.Config{})
	assert.Error(t, err)
}

func TestSplitTokens(t *testing.T) {
	tokens := splitTokens([]string{"apn=internet", "roaming", "off", "pin=12=34"})
	assert.Equal(t, []string{"apn", "internet", "roaming", "off", "pin", "12=34"}, tokens)

	assert.Empty(t, splitTokens(nil))
}
