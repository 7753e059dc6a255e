package full

import "testing"

import "github.com/stretchr/testify/require"

func TestNewErrors(t *testing.T) {
	_, err := New(0, 1, 1)
	require.ErrorIs(t, err, ErrSize)
	_, err = New(4, 1, 0)
	require.ErrorIs(t, err, ErrWindow)
	_, err = New(4, 1, 33)
	require.ErrorIs(t, err, ErrWindow)
	require.Panics(t, func() { MustNew(-1, 1, 1) })
}

func TestFeatureWindow(t *testing.T) {
	c := MustNew(4, 1, 3).Lay()
	c.Put(0, true)
	c.Put(1, false)
	c.Put(2, true)
	c.Put(3, true)

	require.Equal(t, uint32(0b101), c.Feature(0))
	require.Equal(t, uint32(0b011), c.Feature(1))
	// wraps around the end of the layer
	require.Equal(t, uint32(0b111), c.Feature(2))
	require.Equal(t, uint32(0b110), c.Feature(3))
	require.False(t, c.Disregard(0))
}

func TestFeatureStride(t *testing.T) {
	c := MustNew(4, 2, 2).Lay()
	c.Put(0, true)
	c.Put(3, true)
	require.Equal(t, uint32(0b10), c.Feature(0))
	require.Equal(t, uint32(0b01), c.Feature(1))
	require.Equal(t, uint32(0b10), c.Feature(2))
}
