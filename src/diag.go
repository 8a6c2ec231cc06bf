package dat

/*------------------------------------------------------------------
 *
 * Purpose:	Structured diagnostics for the core pipeline.
 *
 * Description:	Samoyed's go.mod already pulls in charmbracelet/log for
 *		this; this finishes wiring it rather than reviving the
 *		old dw_printf/text_color_set globals. Verbosity 0..5
 *		(spec §6 -v/--verbose) maps onto charmbracelet/log's
 *		levels, and -q/--quiet lets only Error level through.
 *
 *		Warning deduplication (spec §9): a small per-track
 *		seen-messages set, keyed on (track number, message),
 *		so the same complaint about one track isn't repeated
 *		for every frame that triggers it.
 *
 *------------------------------------------------------------------*/

import (
	"os"

	"github.com/charmbracelet/log"
)

// Diag is the diagnostic sink threaded through the pipeline. It has no
// package-level global state (spec §9 "Global mutable process state" -
// same strategy as the segmenter context: bundle it explicitly).
type Diag struct {
	logger *log.Logger
	quiet  bool
	seen   map[dedupeKey]bool
}

type dedupeKey struct {
	track   int
	message string
}

// VerbosityToLevel maps the CLI -v/--verbose value (0..5) onto a
// charmbracelet/log level. Higher verbosity surfaces more detail.
func VerbosityToLevel(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.WarnLevel
	case verbosity == 1:
		return log.InfoLevel
	case verbosity == 2:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

// NewDiag builds a Diag writing to stderr at the given verbosity. If
// quiet is true, only Error level is ever emitted regardless of
// verbosity (spec §6 -q/--quiet "suppress warnings" - this also
// suppresses the info/debug detail verbosity would otherwise add).
func NewDiag(verbosity int, quiet bool) *Diag {
	var logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	if quiet {
		logger.SetLevel(log.ErrorLevel)
	} else {
		logger.SetLevel(VerbosityToLevel(verbosity))
	}

	return &Diag{
		logger: logger,
		quiet:  quiet,
		seen:   make(map[dedupeKey]bool),
	}
}

func (d *Diag) Debug(msg string, kv ...any) { d.logger.Debug(msg, kv...) }
func (d *Diag) Info(msg string, kv ...any)  { d.logger.Info(msg, kv...) }
func (d *Diag) Error(msg string, kv ...any) { d.logger.Error(msg, kv...) }

// Warn logs at Warn level unless quiet is set (spec §6 -q suppresses
// warnings specifically).
func (d *Diag) Warn(msg string, kv ...any) {
	if d.quiet {
		return
	}
	d.logger.Warn(msg, kv...)
}

// WarnOnce logs a warning for a track at most once per distinct
// message (spec §9 "Warning deduplication").
func (d *Diag) WarnOnce(track int, msg string, kv ...any) {
	var key = dedupeKey{track: track, message: msg}
	if d.seen[key] {
		return
	}
	d.seen[key] = true
	d.Warn(msg, kv...)
}

// FrameWarnings forwards the non-fatal warnings ParseFrame collected
// for one frame, at debug level (they're routine and expected - most
// are diagnostic-only pack acknowledgements or the occasional discarded
// pack - spec §7 treats them as parser-local recovery).
func (d *Diag) FrameWarnings(frameNumber int64, warnings []string) {
	for _, w := range warnings {
		d.Debug(w, "frame", frameNumber)
	}
}
