package dat

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSamplesPerFrame(t *testing.T) {
	assert.Equal(t, 1440, SamplesPerFrame(Linear16, 48000, 2))
	assert.Equal(t, 1323, SamplesPerFrame(Linear16, 44100, 2))
	assert.Equal(t, 960, SamplesPerFrame(Linear16, 32000, 2))
	assert.Equal(t, 1920, SamplesPerFrame(NonLinear12, 32000, 2))
	assert.Equal(t, 960, SamplesPerFrame(NonLinear12, 32000, 4))
}

func TestWriteAudio_PCM48k(t *testing.T) {
	var payload = bytes.Repeat([]byte{0xAB}, PayloadSize)
	var buf bytes.Buffer

	var samples, err = WriteAudio(&buf, FrameInfo{Encoding: Linear16, SamplingFrequency: 48000, Channels: 2}, payload)
	require.NoError(t, err)
	assert.Equal(t, 1440, samples)
	assert.Equal(t, 5760, buf.Len())
}

func TestWriteAudio_PCM44_1k(t *testing.T) {
	var payload = bytes.Repeat([]byte{0xAB}, PayloadSize)
	var buf bytes.Buffer

	var samples, err = WriteAudio(&buf, FrameInfo{Encoding: Linear16, SamplingFrequency: 44100, Channels: 2}, payload)
	require.NoError(t, err)
	assert.Equal(t, 1323, samples)
	assert.Equal(t, 5292, buf.Len())
}

func TestWriteLP_AllZero(t *testing.T) {
	var payload = make([]byte, PayloadSize)
	var buf bytes.Buffer

	var samples, err = WriteAudio(&buf, FrameInfo{Encoding: NonLinear12, Channels: 2}, payload)
	require.NoError(t, err)
	assert.Equal(t, 1920, samples)
	assert.Equal(t, lpOutputBytes, buf.Len())

	var out = buf.Bytes()
	for i := 0; i < len(out); i += 2 {
		assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(out[i:])))
	}
}

func TestWriteLP_AllOnes(t *testing.T) {
	var payload = bytes.Repeat([]byte{0xFF}, PayloadSize)
	var buf bytes.Buffer

	var _, err = WriteAudio(&buf, FrameInfo{Encoding: NonLinear12, Channels: 2}, payload)
	require.NoError(t, err)

	var out = buf.Bytes()
	for i := 0; i < len(out); i += 2 {
		assert.Equal(t, int16(-1), int16(binary.LittleEndian.Uint16(out[i:])))
	}
}

func TestWriteLP_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var payload = rapid.SliceOfN(rapid.Byte(), PayloadSize, PayloadSize).Draw(t, "payload")

		var buf1, buf2 bytes.Buffer
		var _, err1 = WriteAudio(&buf1, FrameInfo{Encoding: NonLinear12, Channels: 2}, payload)
		var _, err2 = WriteAudio(&buf2, FrameInfo{Encoding: NonLinear12, Channels: 2}, payload)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, buf1.Bytes(), buf2.Bytes())
	})
}

func TestWriteAudio_InvalidSampleRate(t *testing.T) {
	var payload = make([]byte, PayloadSize)
	var buf bytes.Buffer

	var _, err = WriteAudio(&buf, FrameInfo{Encoding: Linear16, SamplingFrequency: 99999, Channels: 2}, payload)
	require.ErrorIs(t, err, ErrInvalidSampleRate)
}
