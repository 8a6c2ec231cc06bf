package main

/*------------------------------------------------------------------
 *
 * Purpose:	Demultiplexer CLI (spec §6 "CLI of the demultiplexer"):
 *		reads one frame stream, writes segmented WAV tracks plus
 *		.details sidecars.
 *
 * Description:	Flag style grounded on Samoyed's atest.go (*P pflag
 *		constructors, multi-line usage strings, an options struct
 *		populated once then handed to the processing core).
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"io"
	"os"

	dat "github.com/kb9dat/dattape/src"
	"github.com/spf13/pflag"
)

func main() {
	var defaults = dat.DefaultOptions()

	var maxNonAudioTape = pflag.IntP("max_nonaudio_tape", "a", defaults.MaxNonAudioTape, "Halt after N consecutive non-audio frames.")
	var maxNonAudioTrack = pflag.IntP("max_nonaudio_track", "A", defaults.MaxNonAudioTrack, "Close track after N consecutive non-audio frames; clamps -a up to match.")
	var ignoreDateTime = pflag.BoolP("ignore_date_time", "d", defaults.IgnoreDateTime, "Disable date/time segmentation.")
	var minTrackLength = pflag.Float64P("minimum_track_length", "m", defaults.MinTrackSeconds, "Delete tracks shorter than S seconds.")
	var maxTrackLength = pflag.Float64P("maximum_track_length", "M", defaults.MaxTrackSeconds, "Close track at S seconds.")
	var ignoreProgramNumber = pflag.BoolP("ignore_program_number", "n", defaults.IgnoreProgramNumber, "Disable program-number segmentation.")
	var prefix = pflag.StringP("prefix", "p", defaults.Prefix, "Output filename prefix.")
	var quiet = pflag.BoolP("quiet", "q", defaults.Quiet, "Suppress warnings.")
	var readSeconds = pflag.Float64P("read_n_seconds", "r", defaults.ReadSeconds, "Halt after S audio seconds produced.")
	var skipFrames = pflag.IntP("skip_n_frames", "s", defaults.SkipFramesOnSegmentChange, "Drop N frames after each segment change.")
	var seekFrames = pflag.IntP("seek_n_frames", "S", defaults.SeekFrames, "Advance input by N frames at start.")
	var verbosity = pflag.IntP("verbose", "v", defaults.Verbosity, "Verbosity 0..5.")
	var version = pflag.BoolP("version", "V", false, "Print version and continue.")
	var logPath = pflag.StringP("log", "L", defaults.LogPath, "Append one CSV row per finalized track to this file.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "datdemux demultiplexes a DAT frame stream into a series of WAV tracks.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTION]... < FRAMESTREAM\n", os.Args[0])
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		dat.PrintVersion(*verbosity > 1)
	}

	var opts = dat.Options{
		MaxNonAudioTape:           *maxNonAudioTape,
		MaxNonAudioTrack:          *maxNonAudioTrack,
		IgnoreDateTime:            *ignoreDateTime,
		MinTrackSeconds:           *minTrackLength,
		MaxTrackSeconds:           *maxTrackLength,
		IgnoreProgramNumber:       *ignoreProgramNumber,
		Prefix:                    *prefix,
		Quiet:                     *quiet,
		ReadSeconds:               *readSeconds,
		SkipFramesOnSegmentChange: *skipFrames,
		SeekFrames:                *seekFrames,
		Verbosity:                 *verbosity,
		LogPath:                   *logPath,
	}
	opts.Normalize()

	var diag = dat.NewDiag(opts.Verbosity, opts.Quiet)

	if err := run(opts, diag, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "datdemux: %s\n", err)
		os.Exit(1)
	}
}

func run(opts dat.Options, diag *dat.Diag, input io.Reader) error {
	var reader = bufio.NewReaderSize(input, 1<<20)

	for i := 0; i < opts.SeekFrames; i++ {
		if _, err := reader.Discard(dat.FrameSize); err != nil {
			if err == io.EOF {
				return nil
			}
			return dat.ErrShortFrame
		}
	}

	var segmenter = dat.NewSegmenter(opts.SegmenterConfig(), dat.OpenTrackSink, diag)

	var curRaw, curInfo, curOK, err = readParsedFrame(reader, 0)
	if err != nil {
		return err
	}
	if !curOK {
		return nil
	}

	var frameNumber int64 = 1

	for {
		var nextRaw, nextInfo, nextOK, err = readParsedFrame(reader, frameNumber)
		if err != nil {
			return err
		}

		diag.FrameWarnings(curInfo.FrameNumber, curInfo.Warnings)

		if !nextOK {
			return segmenter.Flush(curInfo, curRaw[:dat.PayloadSize])
		}

		if err := segmenter.Process(curInfo, nextInfo, curRaw[:dat.PayloadSize]); err != nil {
			return err
		}
		if segmenter.Halted() {
			return nil
		}

		curRaw, curInfo = nextRaw, nextInfo
		frameNumber++
	}
}

func readParsedFrame(r io.Reader, frameNumber int64) ([]byte, dat.FrameInfo, bool, error) {
	var buf = make([]byte, dat.FrameSize)
	var n, err = io.ReadFull(r, buf)
	if err == io.EOF && n == 0 {
		return nil, dat.FrameInfo{}, false, nil
	}
	if err != nil {
		return nil, dat.FrameInfo{}, false, dat.ErrShortFrame
	}

	var info, parseErr = dat.ParseFrame(buf, frameNumber)
	if parseErr != nil {
		return nil, dat.FrameInfo{}, false, parseErr
	}

	return buf, info, true, nil
}
