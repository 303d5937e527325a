// Package descriptor holds the fixed descriptor tables for every bridged
// REAPER interface: the interface name and its virtual operations in exact
// vtable order. The tables carry no runtime behavior. Their single purpose is
// auditability: the shim classes and accessor functions in pkg/bridge and the
// class declarations in include/reaper/reaper_plugin.h must agree with these
// tables, and a mismatch is a wrong-method-invoked bug that no runtime check
// can catch. Keep one descriptor per interface and mirror any SDK change here
// first.
package descriptor

import "encoding/json"

// Param describes one parameter of a virtual operation, with its C type.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Operation describes one virtual operation. Operations appear in the
// interface's vtable order; the order is ABI, not documentation.
type Operation struct {
	Name string `json:"name"`
	// GoName overrides the exported dispatch-symbol spelling for operations
	// whose host name is not a usable Go identifier fragment. Empty means
	// Name is used as-is.
	GoName      string  `json:"goName,omitempty"`
	Params      []Param `json:"params"`
	Returns     string  `json:"returns"`
	SideEffects bool    `json:"sideEffects"`
}

// Interface describes one bridged abstract host class.
type Interface struct {
	// Name is the host's C++ class name.
	Name string `json:"name"`
	// Prefix is the C symbol prefix shared by this interface's create,
	// delete and accessor functions.
	Prefix string `json:"prefix"`
	// GoName is the exported Go name used by behavior interfaces and the
	// Go<GoName><Op> dispatch exports.
	GoName     string      `json:"goName"`
	Operations []Operation `json:"operations"`
}

// CreateSymbol returns the C name of the interface's create function.
func (i Interface) CreateSymbol() string { return i.Prefix + "_create" }

// DeleteSymbol returns the C name of the interface's delete function.
func (i Interface) DeleteSymbol() string { return i.Prefix + "_delete" }

// AccessorSymbol returns the C name of the accessor for op.
func (i Interface) AccessorSymbol(op Operation) string {
	return i.Prefix + "_" + op.Name
}

// DispatchSymbol returns the exported Go dispatch function name for op.
func (i Interface) DispatchSymbol(op Operation) string {
	name := op.Name
	if op.GoName != "" {
		name = op.GoName
	}
	return "Go" + i.GoName + name
}

// JSON renders the descriptor for external audit tooling.
func (i Interface) JSON() ([]byte, error) {
	return json.MarshalIndent(i, "", "  ")
}

// All returns every bridged interface descriptor.
func All() []Interface {
	return []Interface{
		ControlSurface,
		ProjectStateContext,
		PCMSource,
		PCMSink,
		Resampler,
		PitchShift,
		MIDIEventList,
		MIDIInput,
		MIDIOutput,
	}
}

var ControlSurface = Interface{
	Name:   "IReaperControlSurface",
	Prefix: "surface",
	GoName: "Surface",
	Operations: []Operation{
		{Name: "GetTypeString", Returns: "const char*"},
		{Name: "GetDescString", Returns: "const char*"},
		{Name: "GetConfigString", Returns: "const char*"},
		{Name: "CloseNoReset", Returns: "void", SideEffects: true},
		{Name: "Run", Returns: "void", SideEffects: true},
		{Name: "SetTrackListChange", Returns: "void", SideEffects: true},
		{Name: "SetSurfaceVolume", Params: []Param{{"trackid", "MediaTrack*"}, {"volume", "double"}}, Returns: "void", SideEffects: true},
		{Name: "SetSurfacePan", Params: []Param{{"trackid", "MediaTrack*"}, {"pan", "double"}}, Returns: "void", SideEffects: true},
		{Name: "SetSurfaceMute", Params: []Param{{"trackid", "MediaTrack*"}, {"mute", "bool"}}, Returns: "void", SideEffects: true},
		{Name: "SetSurfaceSelected", Params: []Param{{"trackid", "MediaTrack*"}, {"selected", "bool"}}, Returns: "void", SideEffects: true},
		{Name: "SetSurfaceSolo", Params: []Param{{"trackid", "MediaTrack*"}, {"solo", "bool"}}, Returns: "void", SideEffects: true},
		{Name: "SetSurfaceRecArm", Params: []Param{{"trackid", "MediaTrack*"}, {"recarm", "bool"}}, Returns: "void", SideEffects: true},
		{Name: "SetPlayState", Params: []Param{{"play", "bool"}, {"pause", "bool"}, {"rec", "bool"}}, Returns: "void", SideEffects: true},
		{Name: "SetRepeatState", Params: []Param{{"rep", "bool"}}, Returns: "void", SideEffects: true},
		{Name: "SetTrackTitle", Params: []Param{{"trackid", "MediaTrack*"}, {"title", "const char*"}}, Returns: "void", SideEffects: true},
		{Name: "GetTouchState", Params: []Param{{"trackid", "MediaTrack*"}, {"isPan", "int"}}, Returns: "bool"},
		{Name: "SetAutoMode", Params: []Param{{"mode", "int"}}, Returns: "void", SideEffects: true},
		{Name: "ResetCachedVolPanStates", Returns: "void", SideEffects: true},
		{Name: "OnTrackSelection", Params: []Param{{"trackid", "MediaTrack*"}}, Returns: "void", SideEffects: true},
		{Name: "IsKeyDown", Params: []Param{{"key", "int"}}, Returns: "bool"},
		{Name: "Extended", Params: []Param{{"call", "int"}, {"parm1", "void*"}, {"parm2", "void*"}, {"parm3", "void*"}}, Returns: "int", SideEffects: true},
	},
}

var ProjectStateContext = Interface{
	Name:   "ProjectStateContext",
	Prefix: "statectx",
	GoName: "StateCtx",
	Operations: []Operation{
		// AddLine is variadic in the host; the shim renders the format
		// string before crossing, so the bridged operation takes exactly
		// one rendered line.
		{Name: "AddLine", Params: []Param{{"line", "const char*"}}, Returns: "void", SideEffects: true},
		{Name: "GetLine", Params: []Param{{"buf", "char*"}, {"buflen", "int"}}, Returns: "int", SideEffects: true},
		{Name: "GetOutputSize", Returns: "INT64"},
		{Name: "GetTempFlag", Returns: "int"},
		{Name: "SetTempFlag", Params: []Param{{"flag", "int"}}, Returns: "void", SideEffects: true},
	},
}

var PCMSource = Interface{
	Name:   "PCM_source",
	Prefix: "source",
	GoName: "Source",
	Operations: []Operation{
		{Name: "Duplicate", Returns: "PCM_source*", SideEffects: true},
		{Name: "IsAvailable", Returns: "bool"},
		{Name: "SetAvailable", Params: []Param{{"avail", "bool"}}, Returns: "void", SideEffects: true},
		{Name: "GetType", Returns: "const char*"},
		{Name: "GetFileName", Returns: "const char*"},
		{Name: "GetSource", Returns: "PCM_source*"},
		{Name: "SetSource", Params: []Param{{"src", "PCM_source*"}}, Returns: "void", SideEffects: true},
		{Name: "GetNumChannels", Returns: "int"},
		{Name: "GetSampleRate", Returns: "double"},
		{Name: "GetLength", Returns: "double"},
		{Name: "GetLengthBeats", Returns: "double"},
		{Name: "GetBitsPerSample", Returns: "int"},
		{Name: "GetPreferredPosition", Returns: "double"},
		{Name: "PropertiesWindow", Params: []Param{{"hwndParent", "HWND"}}, Returns: "int", SideEffects: true},
		{Name: "GetSamples", Params: []Param{{"block", "PCM_source_transfer_t*"}}, Returns: "void", SideEffects: true},
		{Name: "GetPeakInfo", Params: []Param{{"block", "PCM_source_peaktransfer_t*"}}, Returns: "void", SideEffects: true},
		{Name: "SaveState", Params: []Param{{"ctx", "ProjectStateContext*"}}, Returns: "void", SideEffects: true},
		{Name: "LoadState", Params: []Param{{"firstline", "const char*"}, {"ctx", "ProjectStateContext*"}}, Returns: "int", SideEffects: true},
		{Name: "Peaks_Clear", GoName: "PeaksClear", Params: []Param{{"deleteFile", "bool"}}, Returns: "void", SideEffects: true},
		{Name: "PeaksBuild_Begin", GoName: "PeaksBuildBegin", Returns: "int", SideEffects: true},
		{Name: "PeaksBuild_Run", GoName: "PeaksBuildRun", Returns: "int", SideEffects: true},
		{Name: "PeaksBuild_Finish", GoName: "PeaksBuildFinish", Returns: "void", SideEffects: true},
		{Name: "Extended", Params: []Param{{"call", "int"}, {"parm1", "void*"}, {"parm2", "void*"}, {"parm3", "void*"}}, Returns: "int", SideEffects: true},
	},
}

var PCMSink = Interface{
	Name:   "PCM_sink",
	Prefix: "sink",
	GoName: "Sink",
	Operations: []Operation{
		{Name: "GetOutputInfoString", Params: []Param{{"buf", "char*"}, {"buflen", "int"}}, Returns: "void"},
		{Name: "GetStartTime", Returns: "double"},
		{Name: "SetStartTime", Params: []Param{{"st", "double"}}, Returns: "void", SideEffects: true},
		{Name: "GetFileName", Returns: "const char*"},
		{Name: "GetNumChannels", Returns: "int"},
		{Name: "GetLength", Returns: "double"},
		{Name: "GetFileSize", Returns: "INT64"},
		{Name: "WriteMIDI", Params: []Param{{"events", "MIDI_eventlist*"}, {"len", "int"}, {"samplerate", "double"}}, Returns: "void", SideEffects: true},
		{Name: "WriteDoubles", Params: []Param{{"samples", "ReaSample**"}, {"len", "int"}, {"nch", "int"}, {"offset", "int"}, {"spacing", "int"}}, Returns: "void", SideEffects: true},
		{Name: "WantMIDI", Returns: "bool"},
		{Name: "GetLastSecondPeaks", Params: []Param{{"sz", "int"}, {"buf", "ReaSample*"}}, Returns: "int"},
		{Name: "GetPeakInfo", Params: []Param{{"block", "PCM_source_peaktransfer_t*"}}, Returns: "void", SideEffects: true},
		{Name: "Extended", Params: []Param{{"call", "int"}, {"parm1", "void*"}, {"parm2", "void*"}, {"parm3", "void*"}}, Returns: "int", SideEffects: true},
	},
}

var Resampler = Interface{
	Name:   "REAPER_Resample_Interface",
	Prefix: "resample",
	GoName: "Resample",
	Operations: []Operation{
		{Name: "SetRates", Params: []Param{{"rate_in", "double"}, {"rate_out", "double"}}, Returns: "void", SideEffects: true},
		{Name: "Reset", Returns: "void", SideEffects: true},
		{Name: "GetCurrentLatency", Returns: "double"},
		{Name: "ResamplePrepare", Params: []Param{{"out_samples", "int"}, {"nch", "int"}, {"inbuffer", "ReaSample**"}}, Returns: "int", SideEffects: true},
		{Name: "ResampleOut", Params: []Param{{"out", "ReaSample*"}, {"nsamples_in", "int"}, {"nsamples_out", "int"}, {"nch", "int"}}, Returns: "int", SideEffects: true},
		{Name: "Extended", Params: []Param{{"call", "int"}, {"parm1", "void*"}, {"parm2", "void*"}, {"parm3", "void*"}}, Returns: "int", SideEffects: true},
	},
}

var PitchShift = Interface{
	Name:   "IReaperPitchShift",
	Prefix: "pitchshift",
	GoName: "PitchShift",
	Operations: []Operation{
		{Name: "set_srate", GoName: "SetSampleRate", Params: []Param{{"srate", "double"}}, Returns: "void", SideEffects: true},
		{Name: "set_nch", GoName: "SetNumChannels", Params: []Param{{"nch", "int"}}, Returns: "void", SideEffects: true},
		{Name: "set_shift", GoName: "SetShift", Params: []Param{{"shift", "double"}}, Returns: "void", SideEffects: true},
		{Name: "set_formant_shift", GoName: "SetFormantShift", Params: []Param{{"shift", "double"}}, Returns: "void", SideEffects: true},
		{Name: "set_tempo", GoName: "SetTempo", Params: []Param{{"tempo", "double"}}, Returns: "void", SideEffects: true},
		{Name: "Reset", Returns: "void", SideEffects: true},
		{Name: "GetBuffer", Params: []Param{{"size", "int"}}, Returns: "ReaSample*", SideEffects: true},
		{Name: "BufferDone", Params: []Param{{"input_filled", "int"}}, Returns: "void", SideEffects: true},
		{Name: "FlushSamples", Returns: "void", SideEffects: true},
		{Name: "IsReset", Returns: "bool"},
		{Name: "GetSamples", Params: []Param{{"requested_output", "int"}, {"buffer", "ReaSample*"}}, Returns: "int", SideEffects: true},
		{Name: "SetQualityParameter", Params: []Param{{"parm", "int"}}, Returns: "void", SideEffects: true},
		{Name: "Extended", Params: []Param{{"call", "int"}, {"parm1", "void*"}, {"parm2", "void*"}, {"parm3", "void*"}}, Returns: "int", SideEffects: true},
	},
}

var MIDIEventList = Interface{
	Name:   "MIDI_eventlist",
	Prefix: "midilist",
	GoName: "MIDIList",
	Operations: []Operation{
		{Name: "AddItem", Params: []Param{{"evt", "MIDI_event_t*"}}, Returns: "void", SideEffects: true},
		{Name: "EnumItems", Params: []Param{{"bpos", "int*"}}, Returns: "MIDI_event_t*"},
		{Name: "DeleteItem", Params: []Param{{"bpos", "int"}}, Returns: "void", SideEffects: true},
		{Name: "GetSize", Returns: "int"},
		{Name: "Empty", Returns: "void", SideEffects: true},
	},
}

var MIDIInput = Interface{
	Name:   "midi_Input",
	Prefix: "midiin",
	GoName: "MIDIIn",
	Operations: []Operation{
		{Name: "GetReadBuf", Returns: "MIDI_eventlist*"},
	},
}

var MIDIOutput = Interface{
	Name:   "midi_Output",
	Prefix: "midiout",
	GoName: "MIDIOut",
	Operations: []Operation{
		{Name: "BeginBlock", Returns: "void", SideEffects: true},
		{Name: "EndBlock", Params: []Param{{"length", "int"}, {"srate", "double"}, {"curtempo", "double"}}, Returns: "void", SideEffects: true},
		{Name: "SendMsg", Params: []Param{{"msg", "MIDI_event_t*"}, {"frame_offset", "int"}}, Returns: "void", SideEffects: true},
		{Name: "Send", Params: []Param{{"status", "unsigned char"}, {"d1", "unsigned char"}, {"d2", "unsigned char"}, {"frame_offset", "int"}}, Returns: "void", SideEffects: true},
	},
}
