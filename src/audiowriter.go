package dat

/*------------------------------------------------------------------
 *
 * Purpose:	Pure functions of a track's fixed format: turn one audio
 *		frame's payload into PCM bytes (spec §4.4).
 *
 * Description:	Linear 16-bit PCM frames are a verbatim byte prefix of
 *		the payload. 12-bit non-linear (LP) frames are expanded
 *		through lpPerm (byte de-interleave) and lpTable (12-bit
 *		to 16-bit linear expansion) into 7680 bytes of 16-bit
 *		samples, written little-endian unconditionally regardless
 *		of host (spec §6) via encoding/binary rather than the
 *		runtime table-byteswap Samoyed's teacher domain would
 *		have used on a big-endian host (spec §9 Design Notes).
 *
 *------------------------------------------------------------------*/

import (
	"encoding/binary"
	"io"
)

// pcmActiveBytes returns N, the number of payload bytes written
// verbatim for a linear-16 frame at the given sample rate (spec §4.4).
func pcmActiveBytes(samplingFrequency int) int {
	switch samplingFrequency {
	case 48000:
		return 5760
	case 44100:
		return 5292
	case 32000:
		return 3840
	default:
		return 0
	}
}

// lpOutputBytes is the fixed size of an LP-mode frame's decoded output:
// 3840 16-bit samples, 7680 bytes, regardless of sample rate (LP mode
// is always 32 kHz - spec GLOSSARY).
const lpOutputBytes = 7680

// SamplesPerFrame returns the number of audio samples (per channel,
// interleaved across channels) one frame of the given format
// contributes. It depends solely on (encoding, samplingFrequency,
// channels), per spec §8's invariant on track sample counts.
func SamplesPerFrame(encoding Encoding, samplingFrequency int, channels int) int {
	if channels <= 0 {
		return 0
	}

	if encoding == NonLinear12 {
		return lpOutputBytes / (2 * channels)
	}

	return pcmActiveBytes(samplingFrequency) / (2 * channels)
}

// WriteAudio writes one frame's decoded audio bytes to w and returns
// the number of samples (per spec's samples-per-frame definition)
// written. payload must be the frame's first PayloadSize bytes.
func WriteAudio(w io.Writer, info FrameInfo, payload []byte) (int, error) {
	if info.Encoding == NonLinear12 {
		return writeLP(w, payload, info.Channels)
	}

	return writePCM(w, payload, info.SamplingFrequency, info.Channels)
}

func writePCM(w io.Writer, payload []byte, samplingFrequency int, channels int) (int, error) {
	var n = pcmActiveBytes(samplingFrequency)
	if n <= 0 || n > len(payload) {
		return 0, ErrInvalidSampleRate
	}

	if _, err := w.Write(payload[:n]); err != nil {
		return 0, err
	}

	return SamplesPerFrame(Linear16, samplingFrequency, channels), nil
}

// writeLP decodes a 5760-byte LP payload into 3840 16-bit samples and
// writes them little-endian (spec §4.4). For i = 0, 3, 6, ..., 5757:
// read x0, x1, x2 from perm[i], perm[i+1], perm[i+2]; output
// lp_table[(x0<<4)|((x1>>4)&0xF)] then lp_table[(x2<<4)|(x1&0xF)].
func writeLP(w io.Writer, payload []byte, channels int) (int, error) {
	if len(payload) < PayloadSize {
		return 0, ErrShortFrame
	}

	var out [lpOutputBytes]byte
	var o int

	for i := 0; i+2 < PayloadSize; i += 3 {
		var x0 = payload[lpPerm[i]]
		var x1 = payload[lpPerm[i+1]]
		var x2 = payload[lpPerm[i+2]]

		var a = lpTable[(uint16(x0)<<4)|(uint16(x1>>4)&0xF)]
		var b = lpTable[(uint16(x2)<<4)|(uint16(x1)&0xF)]

		binary.LittleEndian.PutUint16(out[o:], uint16(a))
		binary.LittleEndian.PutUint16(out[o+2:], uint16(b))
		o += 4
	}

	if _, err := w.Write(out[:]); err != nil {
		return 0, err
	}

	return SamplesPerFrame(NonLinear12, 32000, channels), nil
}
