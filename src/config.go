package dat

/*------------------------------------------------------------------
 *
 * Purpose:	Shared CLI options for cmd/datdemux (spec §6).
 *
 * Description:	Grounded on Samoyed's atest.go/direwolf main.go pattern
 *		of a flat options struct populated by pflag and then
 *		handed to the processing core, rather than threading
 *		individual flag values through function signatures.
 *
 *------------------------------------------------------------------*/

// Options holds the demultiplexer's CLI-configurable values (spec §6).
type Options struct {
	MaxNonAudioTape           int
	MaxNonAudioTrack          int
	IgnoreDateTime            bool
	MinTrackSeconds           float64
	MaxTrackSeconds           float64
	IgnoreProgramNumber       bool
	Prefix                    string
	Quiet                     bool
	ReadSeconds               float64
	SkipFramesOnSegmentChange int
	SeekFrames                int
	Verbosity                 int
	Version                   bool
	LogPath                   string
}

// DefaultOptions returns the flag defaults from spec §6's CLI table.
func DefaultOptions() Options {
	return Options{
		MaxNonAudioTape:           10,
		MaxNonAudioTrack:          0,
		IgnoreDateTime:            false,
		MinTrackSeconds:           1.0,
		MaxTrackSeconds:           360000.0,
		IgnoreProgramNumber:       false,
		Prefix:                    "",
		Quiet:                     false,
		ReadSeconds:               360000.0,
		SkipFramesOnSegmentChange: 0,
		SeekFrames:                0,
		Verbosity:                 1,
		Version:                   false,
		LogPath:                   "",
	}
}

// Normalize applies the one cross-flag rule spec §6 states: -A clamps
// -a up to match, since a track can't outlive the tape.
func (o *Options) Normalize() {
	if o.MaxNonAudioTrack > o.MaxNonAudioTape {
		o.MaxNonAudioTape = o.MaxNonAudioTrack
	}
}

// SegmenterConfig projects the CLI options onto the fields the
// segmenter actually consumes.
func (o Options) SegmenterConfig() SegmenterConfig {
	return SegmenterConfig{
		MaxNonAudioTape:           o.MaxNonAudioTape,
		MaxNonAudioTrack:          o.MaxNonAudioTrack,
		IgnoreDateTime:            o.IgnoreDateTime,
		IgnoreProgramNumber:       o.IgnoreProgramNumber,
		MinTrackSeconds:           o.MinTrackSeconds,
		MaxTrackSeconds:           o.MaxTrackSeconds,
		SkipFramesOnSegmentChange: o.SkipFramesOnSegmentChange,
		MaxAudioSecondsRead:       o.ReadSeconds,
		Prefix:                    o.Prefix,
		LogPath:                   o.LogPath,
	}
}
