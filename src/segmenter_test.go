package dat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	written     int
	closed      bool
	deleted     bool
	finalized   bool
	headerCalls []int64
}

func (f *fakeSink) Write(p []byte) (int, error) {
	f.written += len(p)
	return len(p), nil
}
func (f *fakeSink) RewindAndRewriteHeader(sampleCount int64) error {
	f.headerCalls = append(f.headerCalls, sampleCount)
	return nil
}
func (f *fakeSink) Close() error                     { f.closed = true; return nil }
func (f *fakeSink) Delete() error                    { f.deleted = true; return nil }
func (f *fakeSink) FinalizeNaming(*TrackState) error { f.finalized = true; return nil }

func newTestSegmenter() (*Segmenter, *[]*fakeSink) {
	var sinks []*fakeSink
	var factory TrackSinkFactory = func(cfg SegmenterConfig, info FrameInfo, trackNumber int) (TrackSink, error) {
		var s = &fakeSink{}
		sinks = append(sinks, s)
		return s, nil
	}

	var cfg = SegmenterConfig{
		MaxNonAudioTape:           10,
		MaxNonAudioTrack:          3,
		MinTrackSeconds:           0,
		MaxTrackSeconds:           360000,
		MaxAudioSecondsRead:       360000,
		SkipFramesOnSegmentChange: 2,
	}

	var seg = NewSegmenter(cfg, factory, NewDiag(0, true))
	return seg, &sinks
}

func validAudioFrame(n int64, rate int, channels int) FrameInfo {
	return FrameInfo{
		FrameNumber:       n,
		Validity:          Valid,
		Channels:          channels,
		SamplingFrequency: rate,
		Encoding:          Linear16,
		Emphasis:          EmphasisNone,
	}
}

func TestSegmenter_OpensTrackOnFirstAudioFrame(t *testing.T) {
	var seg, sinks = newTestSegmenter()

	var f0 = validAudioFrame(0, 48000, 2)
	var payload = make([]byte, PayloadSize)

	require.NoError(t, seg.Process(f0, f0, payload))

	assert.Len(t, *sinks, 1)
	assert.Equal(t, PayloadSize, (*sinks)[0].written)
}

func TestSegmenter_GapMarkerClosesTrack(t *testing.T) {
	var seg, sinks = newTestSegmenter()
	var payload = make([]byte, PayloadSize)

	var f0 = validAudioFrame(0, 48000, 2)
	require.NoError(t, seg.Process(f0, f0, payload))

	var gap = FrameInfo{FrameNumber: 1, HexPNO: HexPNOGap, Validity: NonAudio}
	require.NoError(t, seg.Process(gap, gap, payload))

	assert.True(t, (*sinks)[0].closed)
	assert.False(t, seg.Halted())
}

func TestSegmenter_EndOfTapeHalts(t *testing.T) {
	var seg, _ = newTestSegmenter()
	var payload = make([]byte, PayloadSize)

	var f0 = validAudioFrame(0, 48000, 2)
	require.NoError(t, seg.Process(f0, f0, payload))

	var eot = FrameInfo{FrameNumber: 1, HexPNO: HexPNOEndOfTape}
	require.NoError(t, seg.Process(eot, eot, payload))

	assert.True(t, seg.Halted())
}

func TestSegmenter_SingleFrameGlitchHealed(t *testing.T) {
	var seg, sinks = newTestSegmenter()
	var payload = make([]byte, PayloadSize)

	var f0 = validAudioFrame(0, 48000, 2)
	require.NoError(t, seg.Process(f0, f0, payload))

	var glitch = FrameInfo{FrameNumber: 1, Validity: NonAudio}
	var f2 = validAudioFrame(2, 48000, 2)

	require.NoError(t, seg.Process(glitch, f2, payload))

	// Track should still be open, not closed by the lone glitch frame.
	assert.False(t, (*sinks)[0].closed)
}

func TestSegmenter_SampleRateChangeClosesTrack(t *testing.T) {
	var seg, sinks = newTestSegmenter()
	var payload = make([]byte, PayloadSize)

	var f0 = validAudioFrame(0, 48000, 2)
	require.NoError(t, seg.Process(f0, f0, payload))

	var changed = validAudioFrame(1, 44100, 2)
	var next = validAudioFrame(2, 44100, 2)

	require.NoError(t, seg.Process(changed, next, payload))

	assert.True(t, (*sinks)[0].closed)
	// New track opens once skip_frames_on_segment_change is exhausted.
	require.NoError(t, seg.Process(next, next, payload))
	require.NoError(t, seg.Process(next, next, payload))
	require.NoError(t, seg.Process(next, next, payload))
	assert.Len(t, *sinks, 2)
}

func TestSegmenter_Inconsistent_DateTimeJump(t *testing.T) {
	var seg, _ = newTestSegmenter()

	var a = FrameInfo{HasDateTime: true, DateTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var b = FrameInfo{HasDateTime: true, DateTime: time.Date(2024, 1, 1, 0, 0, 5, 0, time.UTC)}

	var reason, bad = seg.inconsistent(a, b)
	assert.True(t, bad)
	assert.Equal(t, "jump in subcode date/time", reason)
}

func TestSegmenter_Inconsistent_ChannelsChange(t *testing.T) {
	var seg, _ = newTestSegmenter()

	var a = FrameInfo{Channels: 2}
	var b = FrameInfo{Channels: 4}

	var reason, bad = seg.inconsistent(a, b)
	assert.True(t, bad)
	assert.Equal(t, "change in number of channels", reason)
}

func TestSegmenter_Inconsistent_NoneWhenSame(t *testing.T) {
	var seg, _ = newTestSegmenter()

	var a = validAudioFrame(0, 48000, 2)
	var b = validAudioFrame(1, 48000, 2)

	var _, bad = seg.inconsistent(a, b)
	assert.False(t, bad)
}

func TestSegmenter_Flush_ClosesOpenTrack(t *testing.T) {
	var seg, sinks = newTestSegmenter()
	var payload = make([]byte, PayloadSize)

	var f0 = validAudioFrame(0, 48000, 2)
	require.NoError(t, seg.Process(f0, f0, payload))

	require.NoError(t, seg.Flush(f0, payload))

	assert.True(t, (*sinks)[0].closed)
	assert.True(t, (*sinks)[0].finalized)
}
