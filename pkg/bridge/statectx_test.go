package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkBuffer is a line-oriented state context backed by a slice, serving
// both directions: AddLine appends, GetLine replays from the front.
type chunkBuffer struct {
	BaseStateContext

	lines    []string
	pos      int
	tempFlag int32
}

func (c *chunkBuffer) AddLine(line string) { c.lines = append(c.lines, line) }

func (c *chunkBuffer) GetLine() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

func (c *chunkBuffer) GetOutputSize() int64 {
	var n int64
	for _, line := range c.lines {
		n += int64(len(line)) + 1
	}
	return n
}

func (c *chunkBuffer) GetTempFlag() int32     { return c.tempFlag }
func (c *chunkBuffer) SetTempFlag(flag int32) { c.tempFlag = flag }

func TestStateContextAddLine(t *testing.T) {
	buf := &chunkBuffer{}
	owned := CreateStateContext(buf)
	defer owned.Close()
	native := owned.Native()

	native.AddLine("<SOURCE WAVE")
	native.AddLine(`FILE "take 1.wav"`)
	native.AddLine(">")

	assert.Equal(t, []string{"<SOURCE WAVE", `FILE "take 1.wav"`, ">"}, buf.lines)
}

func TestStateContextAddLinePercentSafe(t *testing.T) {
	buf := &chunkBuffer{}
	owned := CreateStateContext(buf)
	defer owned.Close()

	// Literal percent signs must survive the native printf path unmangled.
	owned.Native().AddLine("VOL 50% %d %s")

	require.Len(t, buf.lines, 1)
	assert.Equal(t, "VOL 50% %d %s", buf.lines[0])
}

func TestStateContextAddLineFormat(t *testing.T) {
	buf := &chunkBuffer{}
	owned := CreateStateContext(buf)
	defer owned.Close()

	// Format expansion happens natively, inside the variadic virtual.
	owned.Native().AddLineFormat("%s %d %.2f", "VOLENV", 3, 0.5)

	require.Len(t, buf.lines, 1)
	assert.Equal(t, "VOLENV 3 0.50", buf.lines[0])
}

func TestStateContextAddLineLong(t *testing.T) {
	buf := &chunkBuffer{}
	owned := CreateStateContext(buf)
	defer owned.Close()

	// Longer than the shim's stack render buffer, forcing the heap path.
	long := "NOTES " + strings.Repeat("x", 8000)
	owned.Native().AddLine(long)

	require.Len(t, buf.lines, 1)
	assert.Equal(t, long, buf.lines[0])
}

func TestStateContextGetLine(t *testing.T) {
	buf := &chunkBuffer{lines: []string{"<TRACK", "NAME drums", ">"}}
	owned := CreateStateContext(buf)
	defer owned.Close()
	native := owned.Native()

	for _, want := range buf.lines {
		line, ok := native.GetLine()
		require.True(t, ok)
		assert.Equal(t, want, line)
	}

	_, ok := native.GetLine()
	assert.False(t, ok)
	// EOF is sticky.
	_, ok = native.GetLine()
	assert.False(t, ok)
}

func TestStateContextFlagsAndSize(t *testing.T) {
	buf := &chunkBuffer{lines: []string{"A", "BB"}}
	owned := CreateStateContext(buf)
	defer owned.Close()
	native := owned.Native()

	assert.Equal(t, int64(5), native.GetOutputSize())

	native.SetTempFlag(7)
	assert.Equal(t, int32(7), native.GetTempFlag())
}

func TestStateContextStaleIdentifier(t *testing.T) {
	buf := &chunkBuffer{lines: []string{"LINE"}}
	owned := CreateStateContext(buf)
	defer owned.Close()
	native := owned.Native()

	require.True(t, owned.h.Delete())

	native.AddLine("dropped")
	_, ok := native.GetLine()
	assert.False(t, ok)
	assert.Equal(t, int64(0), native.GetOutputSize())
	assert.Equal(t, []string{"LINE"}, buf.lines)
}

type panicStateContext struct {
	BaseStateContext
}

func (panicStateContext) AddLine(string)          { panic("ctx fault") }
func (panicStateContext) GetLine() (string, bool) { panic("ctx fault") }

func TestStateContextPanicFirewall(t *testing.T) {
	owned := CreateStateContext(panicStateContext{})
	defer owned.Close()
	native := owned.Native()

	assert.NotPanics(t, func() {
		native.AddLine("boom")
		_, ok := native.GetLine()
		assert.False(t, ok)
	})
}
