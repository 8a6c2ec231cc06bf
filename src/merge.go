package dat

/*------------------------------------------------------------------
 *
 * Purpose:	Triple-Merge (spec §4.1): reconstruct one clean frame
 *		stream from three independent tape reads of the same
 *		recording.
 *
 * Description:	The three reads of one tape rarely start at exactly the
 *		same point - each capture's leading silence (gap marker
 *		frames) can differ in length, so frame 0 of input A is not
 *		necessarily frame 0 of input B. Once the three streams are
 *		aligned past their respective leading gaps, frames are
 *		merged byte-by-byte. Where exactly one input's frame has
 *		no interpolate flags set (a drive saying "I had to
 *		interpolate here" is trusted less than one that didn't)
 *		and its byte differs from both others, that byte wins,
 *		even over two agreeing inputs. Otherwise two agreeing
 *		inputs carry the vote, and a 3-way disagreement goes to
 *		whichever input has accumulated the fewest errors so far.
 *
 *		Grounded on Samoyed's fx25_rec.go Reed-Solomon codeblock
 *		flow: decode, count correctable errors, report - here
 *		generalized from one deterministic decoder over a single
 *		block to a majority vote over three streams.
 *
 *------------------------------------------------------------------*/

import (
	"io"
)

// MergeStats accumulates the error counters spec §4.1 calls for,
// reported to stderr by the caller (cmd/datmerge).
type MergeStats struct {
	FrameCount        int64
	ByteDisagreements int64    // total positions where not all three inputs agreed
	UncorrectedErrors int64    // positions where all three inputs disagreed and no interpolate-flag assist applied (true ties)
	InputErrors       [3]int64 // per-input count of "this input was the outlier"
	LeadingGapSkipped [3]int64 // frames skipped while resyncing each input's leading gap
}

// mergeAbortDivisor is the "frame_count*FRAME_SIZE/16" divisor in the
// abort condition (spec §4.1): uncorrected errors must exceed both a
// flat floor (one frame's worth of bytes) and a rate proportional to
// how much data has been processed, before Triple-Merge gives up.
const mergeAbortDivisor = 16

// MergeStreams reads three synchronized DAT frame streams and writes
// the merged result to out. Per spec §4.1 step 1, end-of-stream on any
// one input ends the merge cleanly at the last fully-aligned triple -
// it is not an error, since the three captures are not guaranteed to
// run exactly the same length. It returns ErrMergeDiverged only if the
// uncorrected_errors abort condition trips.
func MergeStreams(inputs [3]io.Reader, out io.Writer, diag *Diag) (MergeStats, error) {
	var stats MergeStats

	var bufs [3][]byte
	var eof [3]bool

	for i := range inputs {
		var buf, frameEOF, err = resyncLeadingGap(inputs[i], &stats.LeadingGapSkipped[i])
		if err != nil {
			return stats, err
		}
		bufs[i] = buf
		eof[i] = frameEOF
		if stats.LeadingGapSkipped[i] > 0 {
			diag.Info("leading gap frames skipped", "input", i, "frames", stats.LeadingGapSkipped[i])
		}
	}

	var merged = make([]byte, FrameSize)

	for {
		if eof[0] || eof[1] || eof[2] {
			return stats, nil
		}

		mergeFrame(bufs[0], bufs[1], bufs[2], merged, &stats)
		stats.FrameCount++

		if stats.UncorrectedErrors > FrameSize &&
			stats.UncorrectedErrors > stats.FrameCount*FrameSize/mergeAbortDivisor {
			diag.Warn("triple-merge diverged: uncorrected errors exceeded abort threshold",
				"frame", stats.FrameCount, "uncorrected_errors", stats.UncorrectedErrors)
			return stats, ErrMergeDiverged
		}

		if _, err := out.Write(merged); err != nil {
			return stats, err
		}

		for i := range inputs {
			var buf, frameEOF, err = readFrame(inputs[i])
			if err != nil {
				return stats, err
			}
			bufs[i] = buf
			eof[i] = frameEOF
		}
	}
}

// readFrame reads exactly one FrameSize-byte frame, reporting EOF only
// when zero bytes were read (a clean end of stream); any partial frame
// is a short-read error.
func readFrame(r io.Reader) ([]byte, bool, error) {
	var buf = make([]byte, FrameSize)
	var n, err = io.ReadFull(r, buf)
	if err == io.EOF && n == 0 {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, ErrShortFrame
	}
	return buf, false, nil
}

// resyncLeadingGap skips frames whose hex_pno marks them as the
// leading silence gap (spec §4.3 HexPNOGap), so that each input's
// returned first real frame lines up with the other two inputs'
// regardless of how much leading silence each capture happened to
// include.
func resyncLeadingGap(r io.Reader, skipped *int64) ([]byte, bool, error) {
	for {
		var buf, frameEOF, err = readFrame(r)
		if err != nil || frameEOF {
			return buf, frameEOF, err
		}

		var hexPNO, _ = parseHexPNOAndInterpolate(buf)
		if hexPNO != HexPNOGap {
			return buf, false, nil
		}
		*skipped++
	}
}

// mergeFrame merges one frame's worth of bytes from three inputs into
// dst, per spec §4.1 step 3, checked in order:
//  1. all three agree: accept.
//  2. exactly one input's interpolate bits are clear AND its byte
//     differs from both others: interpolate-flag assist - adopt the
//     lone reliable byte, charge an error to each of the other two.
//  3. two of three agree (ordinary majority): they carry, charge the
//     third an error.
//  4. all three disagree: uncorrected_errors++, tiebreak on
//     accumulated per-input error counts.
func mergeFrame(a, b, c, dst []byte, stats *MergeStats) {
	var _, interpA = parseHexPNOAndInterpolate(a)
	var _, interpB = parseHexPNOAndInterpolate(b)
	var _, interpC = parseHexPNOAndInterpolate(c)

	var unflaggedA = interpA == 0
	var unflaggedB = interpB == 0
	var unflaggedC = interpC == 0

	var unflaggedCount = 0
	if unflaggedA {
		unflaggedCount++
	}
	if unflaggedB {
		unflaggedCount++
	}
	if unflaggedC {
		unflaggedCount++
	}

	for i := 0; i < FrameSize; i++ {
		var va, vb, vc = a[i], b[i], c[i]

		if va == vb && vb == vc {
			dst[i] = va
			continue
		}

		if unflaggedCount == 1 {
			switch {
			case unflaggedA && va != vb && va != vc:
				dst[i] = va
				stats.InputErrors[1]++
				stats.InputErrors[2]++
				stats.ByteDisagreements++
				continue
			case unflaggedB && vb != va && vb != vc:
				dst[i] = vb
				stats.InputErrors[0]++
				stats.InputErrors[2]++
				stats.ByteDisagreements++
				continue
			case unflaggedC && vc != va && vc != vb:
				dst[i] = vc
				stats.InputErrors[0]++
				stats.InputErrors[1]++
				stats.ByteDisagreements++
				continue
			}
		}

		switch {
		case va == vb:
			dst[i] = va
			stats.InputErrors[2]++
			stats.ByteDisagreements++
		case va == vc:
			dst[i] = va
			stats.InputErrors[1]++
			stats.ByteDisagreements++
		case vb == vc:
			dst[i] = vb
			stats.InputErrors[0]++
			stats.ByteDisagreements++
		default:
			// True 3-way disagreement.
			stats.ByteDisagreements++
			stats.UncorrectedErrors++
			dst[i] = tiebreak(va, vb, vc, stats.InputErrors)
		}
	}
}

// tiebreak resolves a byte position where all three inputs disagree,
// selecting the input with the fewest accumulated errors so far. The
// ordered comparisons below always pick the minimum count, and among
// equal minimums the smallest input index.
func tiebreak(va, vb, vc byte, inputErrors [3]int64) byte {
	var best int
	if inputErrors[0] <= inputErrors[1] {
		if inputErrors[2] < inputErrors[0] {
			best = 2
		} else {
			best = 0
		}
	} else {
		best = 1
		if inputErrors[2] < inputErrors[1] {
			best = 2
		}
	}

	switch best {
	case 0:
		return va
	case 1:
		return vb
	default:
		return vc
	}
}
