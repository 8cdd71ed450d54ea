package gjk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(strings.NewReader("tolerance: 0.001\nmax_iterations: 32\n"))
	require.NoError(t, err)

	require.Equal(t, Config{
		Tolerance:       0.001,
		CurvedTolerance: DefaultConfig().CurvedTolerance,
		MaxIterations:   32,
	}, config)
}

func TestLoadConfig_Empty(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_UnknownField(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("tolerence: 0.1\n"))
	require.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("tolerance: -1\nmax_iterations: 0\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorContains(t, err, "tolerance")
	require.ErrorContains(t, err, "max_iterations")
	require.NotContains(t, err.Error(), "curved_tolerance")
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	config := DefaultConfig()
	config.CurvedTolerance = 0
	require.NoError(t, config.Validate())

	config.CurvedTolerance = -1
	require.ErrorIs(t, config.Validate(), ErrInvalidConfig)
}
