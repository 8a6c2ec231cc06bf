package dat

/*------------------------------------------------------------------
 *
 * Purpose:	Track Segmenter (spec §4.3): a state machine over
 *		(FrameInfo, lookahead FrameInfo) pairs that decides when
 *		to open, write to, and close audio tracks.
 *
 * Description:	Grounded on Samoyed's hdlc_rec2.go/dlq.go pattern of a
 *		multi-field consistency check gating whether a received
 *		unit continues an existing logical stream or starts a new
 *		one, and config.go's style of bundling what would
 *		otherwise be C statics into one struct threaded explicitly
 *		through calls - here, SegmenterConfig and TrackState,
 *		rather than package-level globals (spec §9 "Global
 *		mutable process state").
 *
 *------------------------------------------------------------------*/

import (
	"time"
)

// SegmenterConfig mirrors the demux CLI's segmentation-relevant flags
// (spec §6).
type SegmenterConfig struct {
	MaxNonAudioTape           int
	MaxNonAudioTrack          int
	IgnoreDateTime            bool
	IgnoreProgramNumber       bool
	MinTrackSeconds           float64
	MaxTrackSeconds           float64
	SkipFramesOnSegmentChange int
	MaxAudioSecondsRead       float64
	Prefix                    string

	// LogPath, if non-empty, appends one CSV row per finalized track
	// (spec.md distillation leaves this implicit; supplemented feature,
	// see SPEC_FULL.md). Empty disables it.
	LogPath string
}

// TrackState is the open-track record (spec §3).
type TrackState struct {
	sink     TrackSink
	tempPath string

	nSamples int64

	firstFrameNumber int64
	firstDateTime    time.Time
	hasFirstDateTime bool

	lastFrameNumber int64

	// info is sticky: set at open from the opening frame's format,
	// then select fields are updated from later frames (date/time
	// whenever the frame carries one; program number only if it was
	// initially absent). The last frame number is kept in
	// lastFrameNumber.
	info FrameInfo
}

// Segmenter runs the track-segmentation state machine. It owns no
// package-level state; everything it needs is either a constructor
// argument or a field on Segmenter/TrackState (spec §9).
type Segmenter struct {
	cfg   SegmenterConfig
	sinks TrackSinkFactory
	diag  *Diag

	track *TrackState

	trackNumber         int
	audioSecondsRead    float64
	consecutiveNonAudio int
	skipRemaining       int

	halted bool
}

// TrackSinkFactory opens a new track sink for the given opening
// format and process-wide track number (used for naming when no
// date/time is available). See trackfile.go.
type TrackSinkFactory func(cfg SegmenterConfig, info FrameInfo, trackNumber int) (TrackSink, error)

func NewSegmenter(cfg SegmenterConfig, sinks TrackSinkFactory, diag *Diag) *Segmenter {
	return &Segmenter{cfg: cfg, sinks: sinks, diag: diag}
}

// Halted reports whether the pipeline should stop reading further
// frames (end-of-tape marker, max_nonaudio_tape, or
// read_n_seconds/max_audio_seconds_read reached).
func (s *Segmenter) Halted() bool { return s.halted }

// Process handles one frame, given its lookahead (the next frame in
// the stream, or itself at EOF - spec §4.3 "Terminal flush"). payload
// is the frame's first PayloadSize bytes, needed only when audio is
// actually written.
func (s *Segmenter) Process(info, next FrameInfo, payload []byte) error {
	// 1. End-of-tape marker.
	if info.HexPNO == HexPNOEndOfTape {
		if err := s.closeTrack(); err != nil {
			return err
		}
		s.halted = true
		return nil
	}

	// 2. Gap marker.
	if info.HexPNO == HexPNOGap {
		if s.track != nil {
			if err := s.closeTrack(); err != nil {
				return err
			}
		}
		return nil
	}

	// 3. Interpolate advisory: informational only at this layer.

	// 4. Non-audio frame.
	if info.Validity == NonAudio || info.Validity == InvalidFields {
		return s.handleNonAudio(info, next)
	}

	// 5. Audio frame.
	return s.handleAudio(info, next, payload)
}

func (s *Segmenter) handleNonAudio(info, next FrameInfo) error {
	s.consecutiveNonAudio++

	if s.consecutiveNonAudio >= s.cfg.MaxNonAudioTape {
		if err := s.closeTrack(); err != nil {
			return err
		}
		s.halted = true
		return nil
	}

	if s.track == nil {
		return nil
	}

	if next.Validity == Valid && !s.inconsistentWithTrack(next) {
		// Single-frame glitch: heal by ignoring it.
		return nil
	}

	if s.consecutiveNonAudio >= s.cfg.MaxNonAudioTrack {
		return s.closeTrack()
	}

	return nil
}

func (s *Segmenter) handleAudio(info, next FrameInfo, payload []byte) error {
	s.consecutiveNonAudio = 0

	if s.track != nil {
		if reason, bad := s.inconsistent(s.track.info, info); bad {
			if _, stillBad := s.inconsistent(s.track.info, next); stillBad {
				s.diag.WarnOnce(s.trackNumber, "closing track: "+reason)
				if err := s.closeTrack(); err != nil {
					return err
				}
				s.skipRemaining = s.cfg.SkipFramesOnSegmentChange
			} else {
				// Heal: adopt next's varying fields onto info and
				// proceed as if consistent (spec §4.3 step 5).
				info = healFrom(info, next)
			}
		}
	}

	if s.skipRemaining > 0 {
		s.skipRemaining--
		return nil
	}

	if s.track == nil {
		if err := s.openTrack(info); err != nil {
			return err
		}
	}

	s.track.lastFrameNumber = info.FrameNumber
	if info.HasDateTime {
		s.track.info.DateTime = info.DateTime
		s.track.info.HasDateTime = true
	}
	if !s.track.info.HasProgramNumber && info.HasProgramNumber {
		s.track.info.HasProgramNumber = true
		s.track.info.ProgramNumber = info.ProgramNumber
	}

	var samples, err = WriteAudio(s.track.sink, info, payload)
	if err != nil {
		return err
	}
	s.track.nSamples += int64(samples)

	var seconds = float64(samples) / float64(info.SamplingFrequency)
	s.audioSecondsRead += seconds

	if s.audioSecondsRead >= s.cfg.MaxAudioSecondsRead {
		if err := s.closeTrack(); err != nil {
			return err
		}
		s.halted = true
		return nil
	}

	if float64(s.track.nSamples)/float64(info.SamplingFrequency) >= s.cfg.MaxTrackSeconds {
		return s.closeTrack()
	}

	return nil
}

// healFrom overwrites a's varying fields from b, per spec §4.3's
// glitch-healing rule.
func healFrom(a, b FrameInfo) FrameInfo {
	a.Channels = b.Channels
	a.SamplingFrequency = b.SamplingFrequency
	a.Encoding = b.Encoding
	a.Emphasis = b.Emphasis
	if b.HasProgramNumber {
		a.ProgramNumber = b.ProgramNumber
		a.HasProgramNumber = true
	}
	if b.HasDateTime {
		a.DateTime = b.DateTime
		a.HasDateTime = true
	}
	return a
}

func (s *Segmenter) inconsistentWithTrack(info FrameInfo) bool {
	var _, bad = s.inconsistent(s.track.info, info)
	return bad
}

// inconsistent implements spec §4.3's inconsistent(a, b) predicate,
// returning the first matching reason in priority order. Per spec §9's
// Open Question, the source's channel check compared a field to
// itself (`i1->nChannels != i1->nChannels`, never true); this is the
// intended `a.Channels != b.Channels`.
func (s *Segmenter) inconsistent(a, b FrameInfo) (string, bool) {
	if !s.cfg.IgnoreDateTime && a.HasDateTime && b.HasDateTime {
		var delta = a.DateTime.Sub(b.DateTime)
		if delta < 0 {
			delta = -delta
		}
		if delta > time.Second {
			return "jump in subcode date/time", true
		}
	}

	if a.Channels != b.Channels {
		return "change in number of channels", true
	}

	if a.SamplingFrequency != b.SamplingFrequency {
		return "change in sampling frequency", true
	}

	if !s.cfg.IgnoreProgramNumber && a.HasProgramNumber && b.HasProgramNumber && a.ProgramNumber != b.ProgramNumber {
		return "change in program number", true
	}

	if a.Encoding != b.Encoding {
		return "change in encoding", true
	}

	if a.Emphasis != b.Emphasis {
		return "change in emphasis", true
	}

	return "", false
}

func (s *Segmenter) openTrack(info FrameInfo) error {
	s.trackNumber++

	var sink, err = s.sinks(s.cfg, info, s.trackNumber)
	if err != nil {
		return err
	}

	s.track = &TrackState{
		sink:             sink,
		firstFrameNumber: info.FrameNumber,
		lastFrameNumber:  info.FrameNumber,
		info:             info,
	}
	if info.HasDateTime {
		s.track.firstDateTime = info.DateTime
		s.track.hasFirstDateTime = true
	}

	return nil
}

// closeTrack finalizes the open track, deleting it if it falls short
// of min_track_seconds (spec §3 invariant).
func (s *Segmenter) closeTrack() error {
	if s.track == nil {
		return nil
	}

	var track = s.track
	s.track = nil

	if err := track.sink.RewindAndRewriteHeader(track.nSamples); err != nil {
		return err
	}
	if err := track.sink.Close(); err != nil {
		return err
	}

	var seconds = float64(track.nSamples) / float64(track.info.SamplingFrequency)
	if track.info.SamplingFrequency == 0 || seconds < s.cfg.MinTrackSeconds {
		return track.sink.Delete()
	}

	return track.sink.FinalizeNaming(track)
}

// Flush processes EOF: the terminal frame is handled with itself as
// lookahead, then any open track is closed (spec §4.3 "Terminal flush").
func (s *Segmenter) Flush(last FrameInfo, payload []byte) error {
	if err := s.Process(last, last, payload); err != nil {
		return err
	}
	return s.closeTrack()
}
