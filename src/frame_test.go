package dat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newFrame() []byte {
	return make([]byte, FrameSize)
}

func setMainID(raw []byte, channelsCode, samplerateCode, emphasisCode, encodingCode byte) {
	raw[mainIDOffset] = (emphasisCode << 4) | (samplerateCode << 2) | channelsCode
	raw[mainIDOffset+1] = encodingCode << 6
}

func setSubID(raw []byte, dataid, ctrlid, numpacks, pno1, pno2, pno3, interpolate byte) {
	raw[subIDOffset] = (ctrlid << 4) | dataid
	raw[subIDOffset+1] = (pno1 << 4) | numpacks
	raw[subIDOffset+2] = (pno2 << 4) | pno3
	raw[subIDOffset+3] = interpolate
}

func TestParseFrame_ShortFrame(t *testing.T) {
	var _, err = ParseFrame(make([]byte, FrameSize-1), 0)
	require.ErrorIs(t, err, ErrShortFrame)
}

func TestParseFrame_ValidStereo48k(t *testing.T) {
	var raw = newFrame()
	setMainID(raw, 0, 0, 0, 0)
	setSubID(raw, 0, 0x0c, 0, 0, 0, 1, 0)

	var info, err = ParseFrame(raw, 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), info.FrameNumber)
	assert.Equal(t, Valid, info.Validity)
	assert.Equal(t, 2, info.Channels)
	assert.Equal(t, 48000, info.SamplingFrequency)
	assert.Equal(t, Linear16, info.Encoding)
	assert.Equal(t, EmphasisNone, info.Emphasis)
	assert.True(t, info.HasProgramNumber)
	assert.Equal(t, 1, info.ProgramNumber)
}

func TestParseFrame_InvalidChannelsCode(t *testing.T) {
	var raw = newFrame()
	setMainID(raw, 2, 0, 0, 0) // channels code 2 is reserved
	setSubID(raw, 0, 0, 0, 0, 0, 0, 0)

	var info, err = ParseFrame(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, InvalidFields, info.Validity)
}

func TestParseFrame_NonAudio(t *testing.T) {
	var raw = newFrame()
	setMainID(raw, 0, 1, 0, 0)
	setSubID(raw, 3, 0, 0, 0, 0, 0, 0) // dataid != 0

	var info, err = ParseFrame(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, NonAudio, info.Validity)
	assert.Equal(t, 44100, info.SamplingFrequency)
}

func TestParseFrame_ProgramNumberAbsentWithoutCtrlBits(t *testing.T) {
	var raw = newFrame()
	setMainID(raw, 0, 0, 0, 0)
	setSubID(raw, 0, 0, 0, 1, 2, 3, 0) // ctrlid bits 0x04/0x08 unset

	var info, err = ParseFrame(raw, 0)
	require.NoError(t, err)
	assert.False(t, info.HasProgramNumber)
	assert.Equal(t, 0x123, info.HexPNO)
}

func TestParseFrame_InterpolateFlags(t *testing.T) {
	var raw = newFrame()
	setMainID(raw, 0, 0, 0, 0)
	setSubID(raw, 0, 0, 0, 0, 0, 0, InterpolateBit40|InterpolateBit20|0x01)

	var info, err = ParseFrame(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(InterpolateBit40|InterpolateBit20), info.InterpolateFlags)
}

func setDatePack(raw []byte, packIndex int, weekday, year, month, day, hour, minute, second byte) {
	var offset = subcodePacksOffset + packIndex*subcodePackSize
	var pack = raw[offset : offset+subcodePackSize]

	pack[0] = (5 << 4) | (weekday & 0x0f)
	pack[1] = bcdEncode(year)
	pack[2] = bcdEncode(month + 1)
	pack[3] = bcdEncode(day)
	pack[4] = bcdEncode(hour + 1)
	pack[5] = bcdEncode(minute)
	pack[6] = bcdEncode(second)

	var parity byte
	for i := 0; i < 7; i++ {
		parity ^= pack[i]
	}
	pack[7] = parity
}

func bcdEncode(v byte) byte {
	return ((v / 10) << 4) | (v % 10)
}

func TestParseFrame_DatePack(t *testing.T) {
	var raw = newFrame()
	setMainID(raw, 0, 0, 0, 0)
	setSubID(raw, 0, 0, 0, 0, 0, 0, 0)

	var expected = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	setDatePack(raw, 0, byte(expected.Weekday()), 24, 2, 15, 10, 30, 0)

	var info, err = ParseFrame(raw, 0)
	require.NoError(t, err)
	require.True(t, info.HasDateTime)
	assert.True(t, expected.Equal(info.DateTime))
	assert.Empty(t, info.Warnings)
}

func TestParseFrame_DatePackWeekdayMismatchWarns(t *testing.T) {
	var raw = newFrame()
	setMainID(raw, 0, 0, 0, 0)
	setSubID(raw, 0, 0, 0, 0, 0, 0, 0)

	setDatePack(raw, 0, 0, 24, 2, 15, 10, 30, 0) // deliberately wrong weekday nibble unless it happens to match

	var info, err = ParseFrame(raw, 0)
	require.NoError(t, err)
	require.True(t, info.HasDateTime)
	if int(time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC).Weekday()) != 0 {
		assert.NotEmpty(t, info.Warnings)
	}
}

func TestParseFrame_BadParityPackDiscarded(t *testing.T) {
	var raw = newFrame()
	setMainID(raw, 0, 0, 0, 0)
	setSubID(raw, 0, 0, 0, 0, 0, 0, 0)

	setDatePack(raw, 0, 1, 24, 2, 15, 10, 30, 0)
	raw[subcodePacksOffset+7] ^= 0xff // corrupt parity byte

	var info, err = ParseFrame(raw, 0)
	require.NoError(t, err)
	assert.False(t, info.HasDateTime)
	assert.Contains(t, info.Warnings[0], "parity")
}

func TestBCDDecode(t *testing.T) {
	assert.Equal(t, 0, bcdDecode(0x00))
	assert.Equal(t, 99, bcdDecode(0x99))
	assert.Equal(t, 42, bcdDecode(0x42))
}

func TestParseFrame_NeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var raw = rapid.SliceOfN(rapid.Byte(), FrameSize, FrameSize).Draw(t, "raw")

		assert.NotPanics(t, func() {
			var _, err = ParseFrame(raw, 0)
			require.NoError(t, err)
		})
	})
}
