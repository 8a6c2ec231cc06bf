package dat

/*------------------------------------------------------------------
 *
 * Purpose:	Error kinds for the core pipeline (spec §7).
 *
 * Description:	Recovery local to the parser (bad pack, bad date) and
 *		local to the segmenter (single-frame glitch healing)
 *		never surface above their respective layers - the errors
 *		below, together with I/O errors passed up unchanged from
 *		the os package, are what reach main() and become a
 *		non-zero process exit.
 *
 *------------------------------------------------------------------*/

import "errors"

// ErrShortFrame is returned when fewer than FrameSize bytes were
// available where a whole frame was expected - a format violation,
// always fatal (spec §3 invariant, §7 "Short read").
var ErrShortFrame = errors.New("dat: short frame read")

// ErrMergeDiverged is returned by the Triple-Merge abort condition
// (spec §4.1): too many byte positions had all three inputs disagree,
// more than statistically explainable by noise, implying the inputs
// are misaligned or one is badly damaged.
var ErrMergeDiverged = errors.New("dat: triple-merge inputs unaligned or badly damaged")

// ErrInvalidSampleRate is returned when a frame's sampling frequency is
// not one of the three valid rates - the audio writer has no byte count
// to write for anything else.
var ErrInvalidSampleRate = errors.New("dat: invalid sampling frequency")
