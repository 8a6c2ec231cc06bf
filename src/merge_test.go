package dat

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validFrameBytes(pno int) []byte {
	var raw = make([]byte, FrameSize)
	setMainID(raw, 0, 0, 0, 0)
	setSubID(raw, 0, 0x0c, 0, byte(pno/100), byte((pno/10)%10), byte(pno%10), 0)
	return raw
}

func gapFrameBytes() []byte {
	var raw = make([]byte, FrameSize)
	setMainID(raw, 0, 0, 0, 0)
	// hex_pno == 0x0BB: pno1=0x0, pno2=0xb, pno3=0xb
	setSubID(raw, 0, 0x00, 0, 0x0, 0x0b, 0x0b, 0)
	return raw
}

func concatFrames(frames ...[]byte) []byte {
	var buf bytes.Buffer
	for _, f := range frames {
		buf.Write(f)
	}
	return buf.Bytes()
}

func TestMergeStreams_IdenticalInputsByteIdentical(t *testing.T) {
	var frame = validFrameBytes(1)
	frame[100] = 0x42

	var stream = concatFrames(frame, frame)

	var a = bytes.NewReader(stream)
	var b = bytes.NewReader(stream)
	var c = bytes.NewReader(stream)

	var out bytes.Buffer
	var diag = NewDiag(0, true)

	var stats, err = MergeStreams([3]io.Reader{a, b, c}, &out, diag)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.FrameCount)
	assert.Equal(t, int64(0), stats.UncorrectedErrors)
	assert.Equal(t, int64(0), stats.ByteDisagreements)
	assert.Equal(t, stream, out.Bytes())
}

func TestMergeStreams_MajorityVote(t *testing.T) {
	var base = validFrameBytes(1)

	var a = make([]byte, FrameSize)
	var b = make([]byte, FrameSize)
	var c = make([]byte, FrameSize)
	copy(a, base)
	copy(b, base)
	copy(c, base)

	b[1000] = a[1000] + 1 // lone disagreement

	var out bytes.Buffer
	var diag = NewDiag(0, true)

	var stats, err = MergeStreams([3]io.Reader{bytes.NewReader(a), bytes.NewReader(b), bytes.NewReader(c)}, &out, diag)

	require.NoError(t, err)
	assert.Equal(t, a[1000], out.Bytes()[1000])
	assert.Equal(t, int64(1), stats.InputErrors[1])
	assert.Equal(t, int64(0), stats.UncorrectedErrors)
}

func TestMergeStreams_ThreeWayTiebreak(t *testing.T) {
	var base = validFrameBytes(1)

	var a = make([]byte, FrameSize)
	var b = make([]byte, FrameSize)
	var c = make([]byte, FrameSize)
	copy(a, base)
	copy(b, base)
	copy(c, base)

	a[2000] = 1
	b[2000] = 2
	c[2000] = 3

	var dst = make([]byte, FrameSize)
	var stats = MergeStats{InputErrors: [3]int64{2, 0, 1}}

	mergeFrame(a, b, c, dst, &stats)

	assert.Equal(t, b[2000], dst[2000]) // input 1 has the fewest errors
	assert.Equal(t, int64(1), stats.UncorrectedErrors)
}

func TestMergeStreams_LeadingGapResync(t *testing.T) {
	var gap = gapFrameBytes()
	var real = validFrameBytes(1)

	var streamA = concatFrames(gap, real)
	var streamB = concatFrames(real)
	var streamC = concatFrames(real)

	var out bytes.Buffer
	var diag = NewDiag(0, true)

	var stats, err = MergeStreams([3]io.Reader{bytes.NewReader(streamA), bytes.NewReader(streamB), bytes.NewReader(streamC)}, &out, diag)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.LeadingGapSkipped[0])
	assert.Equal(t, int64(1), stats.FrameCount)
}

func TestMergeStreams_CleanExitOnShortestInput(t *testing.T) {
	var frame = validFrameBytes(1)

	var streamA = concatFrames(frame, frame)
	var streamB = concatFrames(frame)
	var streamC = concatFrames(frame, frame)

	var out bytes.Buffer
	var diag = NewDiag(0, true)

	var stats, err = MergeStreams([3]io.Reader{bytes.NewReader(streamA), bytes.NewReader(streamB), bytes.NewReader(streamC)}, &out, diag)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.FrameCount)
	assert.Equal(t, frame, out.Bytes())
}

func TestMergeStreams_AbortOnDivergence(t *testing.T) {
	var a = make([]byte, FrameSize*3)
	var b = make([]byte, FrameSize*3)
	var c = make([]byte, FrameSize*3)

	for i := range a {
		a[i] = byte(i)
		b[i] = byte(i + 1)
		c[i] = byte(i + 2)
	}

	var out bytes.Buffer
	var diag = NewDiag(0, true)

	var _, err = MergeStreams([3]io.Reader{bytes.NewReader(a), bytes.NewReader(b), bytes.NewReader(c)}, &out, diag)

	require.ErrorIs(t, err, ErrMergeDiverged)
}

func TestMergeFrame_AgreementNeverChanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.SliceOfN(rapid.Byte(), FrameSize, FrameSize).Draw(t, "a")
		var b = make([]byte, FrameSize)
		copy(b, a)
		var c = make([]byte, FrameSize)
		copy(c, a)

		var dst = make([]byte, FrameSize)
		var stats MergeStats
		mergeFrame(a, b, c, dst, &stats)

		assert.Equal(t, a, dst)
		assert.Equal(t, int64(0), stats.UncorrectedErrors)
	})
}
