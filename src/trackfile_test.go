package dat

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavHeader_Length(t *testing.T) {
	var h = wavHeader(1000, 2, 48000)
	assert.Len(t, h, 44)
	assert.Equal(t, "RIFF", string(h[0:4]))
	assert.Equal(t, "WAVE", string(h[8:12]))
	assert.Equal(t, "fmt ", string(h[12:16]))
	assert.Equal(t, "data", string(h[36:40]))
}

func TestWavHeader_DataLength(t *testing.T) {
	var samples int64 = 1000
	var channels = 2
	var h = wavHeader(samples, channels, 48000)

	var dataLength = binary.LittleEndian.Uint32(h[40:44])
	assert.Equal(t, uint32(samples*int64(channels)*2), dataLength)
}

func TestWavHeader_FieldsMatchFormat(t *testing.T) {
	var h = wavHeader(0, 4, 44100)
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(h[22:24]))
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(h[24:28]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(h[34:36]))
}

func TestOpenTrackSink_WritesPlaceholderHeaderAndAudio(t *testing.T) {
	var dir = t.TempDir()
	var cfg = SegmenterConfig{Prefix: dir + string(filepath.Separator)}

	var info = FrameInfo{Channels: 2, SamplingFrequency: 48000}
	var sink, err = OpenTrackSink(cfg, info, 1)
	require.NoError(t, err)

	var payload = make([]byte, 100)
	var n, writeErr = sink.Write(payload)
	require.NoError(t, writeErr)
	assert.Equal(t, 100, n)

	require.NoError(t, sink.RewindAndRewriteHeader(24))
	require.NoError(t, sink.Close())

	var raw, readErr = os.ReadFile(filepath.Join(dir, "tmp1.wav"))
	require.NoError(t, readErr)
	assert.Len(t, raw, 44+100)
	assert.Equal(t, uint32(24*2*2), binary.LittleEndian.Uint32(raw[40:44]))
}

func TestFinalizeNaming_DateBased(t *testing.T) {
	var dir = t.TempDir()
	var cfg = SegmenterConfig{Prefix: dir + string(filepath.Separator)}

	var info = FrameInfo{Channels: 2, SamplingFrequency: 48000}
	var sink, err = OpenTrackSink(cfg, info, 1)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	var dt = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	var track = &TrackState{
		info:             info,
		firstDateTime:    dt,
		hasFirstDateTime: true,
		firstFrameNumber: 0,
		lastFrameNumber:  99,
		nSamples:         1440,
	}

	require.NoError(t, sink.FinalizeNaming(track))

	var wavPath = filepath.Join(dir, "2024-03-15-10-30-00.wav")
	var detailsPath = filepath.Join(dir, "2024-03-15-10-30-00.details")

	assert.FileExists(t, wavPath)
	assert.FileExists(t, detailsPath)

	var details, readErr = os.ReadFile(detailsPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(details), "Sampling frequency: 48000")
	assert.Contains(t, string(details), "Samples: 1440")
	assert.Contains(t, string(details), "Program_number: --")
}

func TestFinalizeNaming_TrackNumberBased(t *testing.T) {
	var dir = t.TempDir()
	var cfg = SegmenterConfig{Prefix: dir + string(filepath.Separator)}

	var info = FrameInfo{Channels: 2, SamplingFrequency: 48000}
	var sink, err = OpenTrackSink(cfg, info, 7)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	var track = &TrackState{info: info, firstFrameNumber: 0, lastFrameNumber: 10}

	require.NoError(t, sink.FinalizeNaming(track))

	assert.FileExists(t, filepath.Join(dir, "7.wav"))
	assert.FileExists(t, filepath.Join(dir, "7.details"))
}

func TestFinalizeNaming_AppendsTrackLog(t *testing.T) {
	var dir = t.TempDir()
	var logPath = filepath.Join(dir, "tracks.csv")
	var cfg = SegmenterConfig{Prefix: dir + string(filepath.Separator), LogPath: logPath}

	var info = FrameInfo{Channels: 2, SamplingFrequency: 48000}

	var sink1, err = OpenTrackSink(cfg, info, 1)
	require.NoError(t, err)
	require.NoError(t, sink1.Close())
	require.NoError(t, sink1.FinalizeNaming(&TrackState{info: info, firstFrameNumber: 0, lastFrameNumber: 10}))

	var sink2 TrackSink
	sink2, err = OpenTrackSink(cfg, info, 2)
	require.NoError(t, err)
	require.NoError(t, sink2.Close())
	require.NoError(t, sink2.FinalizeNaming(&TrackState{info: info, firstFrameNumber: 11, lastFrameNumber: 20}))

	var raw, readErr = os.ReadFile(logPath)
	require.NoError(t, readErr)

	var lines = strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3) // header + two track rows
	assert.True(t, strings.HasPrefix(lines[0], "track_number,wav_path"))
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
	assert.True(t, strings.HasPrefix(lines[2], "2,"))
}
