package descriptor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllValidate(t *testing.T) {
	ifaces := All()
	require.Len(t, ifaces, 9)
	for _, iface := range ifaces {
		assert.NoError(t, Validate(iface), iface.Name)
	}
}

// Operation counts are fixed by the host's vtable layouts; a change here
// means the SDK header subset changed and every shim must be re-audited.
func TestOperationCounts(t *testing.T) {
	counts := map[string]int{
		"IReaperControlSurface":     21,
		"ProjectStateContext":       5,
		"PCM_source":                23,
		"PCM_sink":                  13,
		"REAPER_Resample_Interface": 6,
		"IReaperPitchShift":         13,
		"MIDI_eventlist":            5,
		"midi_Input":                1,
		"midi_Output":               4,
	}
	for _, iface := range All() {
		assert.Equal(t, counts[iface.Name], len(iface.Operations), iface.Name)
	}
}

func TestSymbolNaming(t *testing.T) {
	s := ControlSurface
	assert.Equal(t, "surface_create", s.CreateSymbol())
	assert.Equal(t, "surface_delete", s.DeleteSymbol())
	assert.Equal(t, "surface_GetTypeString", s.AccessorSymbol(s.Operations[0]))
	assert.Equal(t, "GoSurfaceGetTypeString", s.DispatchSymbol(s.Operations[0]))

	p := PitchShift
	assert.Equal(t, "pitchshift_set_srate", p.AccessorSymbol(p.Operations[0]))
	assert.Equal(t, "GoPitchShiftSetSampleRate", p.DispatchSymbol(p.Operations[0]))
}

func TestUniquePrefixes(t *testing.T) {
	seen := map[string]string{}
	for _, iface := range All() {
		prev, dup := seen[iface.Prefix]
		assert.False(t, dup, "prefix %q shared by %s and %s", iface.Prefix, prev, iface.Name)
		seen[iface.Prefix] = iface.Name
	}
}

func TestVTableOrder(t *testing.T) {
	// Spot checks against the SDK declaration order. These positions are
	// what the host binary dispatches through; they are load-bearing.
	assert.Equal(t, "Run", ControlSurface.Operations[4].Name)
	assert.Equal(t, "Extended", ControlSurface.Operations[20].Name)
	assert.Equal(t, "Duplicate", PCMSource.Operations[0].Name)
	assert.Equal(t, "GetSamples", PCMSource.Operations[14].Name)
	assert.Equal(t, "AddLine", ProjectStateContext.Operations[0].Name)
	assert.Equal(t, "WriteDoubles", PCMSink.Operations[8].Name)
	assert.Equal(t, "SendMsg", MIDIOutput.Operations[2].Name)
}

func TestRejectsMalformed(t *testing.T) {
	bad := Interface{Name: "X", Prefix: "Bad_Prefix", GoName: "X",
		Operations: []Operation{{Name: "Op", Returns: "void"}}}
	assert.Error(t, Validate(bad))

	dup := Interface{Name: "X", Prefix: "x", GoName: "X",
		Operations: []Operation{
			{Name: "Op", Returns: "void"},
			{Name: "Op", Returns: "int"},
		}}
	assert.Error(t, Validate(dup))
}

func TestJSONRoundTrip(t *testing.T) {
	doc, err := Resampler.JSON()
	require.NoError(t, err)

	var back Interface
	require.NoError(t, json.Unmarshal(doc, &back))
	assert.Equal(t, Resampler, back)
}
