package fuel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInjector_RejectsNonPositiveFlow(t *testing.T) {
	_, err := NewInjector(0)
	assert.ErrorIs(t, err, ErrInjectorFlow)

	_, err = NewInjector(-0.02)
	assert.ErrorIs(t, err, ErrInjectorFlow)
}

func TestInjector_PulseWidth(t *testing.T) {
	inj, err := NewInjector(0.02)
	require.NoError(t, err)

	// 0.04 g through a 0.02 g/ms injector takes 2 ms
	assert.InDelta(t, 2.0, inj.PulseWidth(0.04), 1e-12)
	assert.Equal(t, 0.02, inj.FlowRate())
}
