package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocSampleBuffer(t *testing.T) {
	buf := AllocSampleBuffer(128)
	defer FreeSampleBuffer(buf)

	require.Len(t, buf, 128)
	for i, v := range buf {
		assert.Zero(t, v, "sample %d not zeroed", i)
	}

	buf[0] = 1.5
	buf[127] = -1.5
	assert.Equal(t, 1.5, buf[0])
	assert.Equal(t, -1.5, buf[127])
}

func TestAllocSampleBufferEmpty(t *testing.T) {
	assert.Nil(t, AllocSampleBuffer(0))
	assert.Nil(t, AllocSampleBuffer(-4))
	assert.NotPanics(t, func() { FreeSampleBuffer(nil) })
}
