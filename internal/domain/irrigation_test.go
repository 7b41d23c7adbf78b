package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropCoefficient(t *testing.T) {
	kc, ok := CropCoefficient("olive")
	require.True(t, ok)
	assert.Equal(t, 0.70, kc)

	_, ok = CropCoefficient("durian")
	assert.False(t, ok)
}

func TestIrrigationDerivation(t *testing.T) {
	etc := CropEvapotranspiration(5.0, 0.7)
	assert.InDelta(t, 3.5, etc, 1e-12)

	// 3.5 mm over 1000 m² is 3500 liters.
	assert.InDelta(t, 3500.0, IrrigationVolume(etc, 1000), 1e-9)
	assert.Equal(t, 0.0, IrrigationVolume(etc, 0))
}
