package dat

/*------------------------------------------------------------------
 *
 * Purpose:	Track File Emitter (spec §4.5): create, write, finalize,
 *		name, and timestamp track sinks.
 *
 * Description:	Grounded on Samoyed's log.go "open-for-append / write
 *		header only if new / close on rotation" idiom, adapted
 *		here to "open with placeholder header, rewrite on close",
 *		and its CSV sidecar-writing pattern generalized to the
 *		.details key-value sidecar.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

// TrackSink is the abstract sink interface spec §4.5 calls for:
// {open, write, rewind_and_rewrite_header, close, delete, rename,
// set_times}. open is the TrackSinkFactory below; rename + set_times
// (sidecar included) are composed into FinalizeNaming since they
// always happen together at close, driven by the same TrackState.
type TrackSink interface {
	Write(p []byte) (int, error)
	RewindAndRewriteHeader(sampleCount int64) error
	Close() error
	Delete() error
	FinalizeNaming(track *TrackState) error
}

// ctimePattern approximates the host's locale-independent ctime format
// spec §6 calls for (e.g. "Thu Jan  1 00:00:00 1970"). Used the same
// way Samoyed's xmit.go/tq.go call strftime.Format directly with a
// pattern string, rather than building a reusable *Strftime value.
const ctimePattern = "%a %b %e %H:%M:%S %Y"

// FileTrackSink writes a WAV file plus its .details sidecar on disk.
type FileTrackSink struct {
	cfg         SegmenterConfig
	trackNumber int

	wavPath string
	file    *os.File

	channels   int
	sampleRate int
}

// OpenTrackSink is the TrackSinkFactory used by cmd/datdemux. It opens
// a provisionally-named WAV file and writes a placeholder header.
func OpenTrackSink(cfg SegmenterConfig, info FrameInfo, trackNumber int) (TrackSink, error) {
	var wavPath = cfg.Prefix + "tmp" + strconv.Itoa(trackNumber) + ".wav"

	var f, err = os.Create(wavPath)
	if err != nil {
		return nil, err
	}

	var sink = &FileTrackSink{
		cfg:         cfg,
		trackNumber: trackNumber,
		wavPath:     wavPath,
		file:        f,
		channels:    info.Channels,
		sampleRate:  info.SamplingFrequency,
	}

	if _, err := f.Write(wavHeader(0, sink.channels, sink.sampleRate)); err != nil {
		f.Close()
		return nil, err
	}

	return sink, nil
}

func (s *FileTrackSink) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

func (s *FileTrackSink) RewindAndRewriteHeader(sampleCount int64) error {
	var header = wavHeader(sampleCount, s.channels, s.sampleRate)
	if _, err := s.file.WriteAt(header, 0); err != nil {
		return err
	}
	return nil
}

func (s *FileTrackSink) Close() error {
	return s.file.Close()
}

func (s *FileTrackSink) Delete() error {
	return os.Remove(s.wavPath)
}

// FinalizeNaming computes the track's permanent name (date-based if a
// first date/time was seen, else track-number-based), renames the WAV
// file, writes the .details sidecar, and sets both files' access and
// modification times to the track's first date/time, if any (spec
// §4.5 "File times").
func (s *FileTrackSink) FinalizeNaming(track *TrackState) error {
	var stem string
	if track.hasFirstDateTime {
		stem = track.firstDateTime.Format("2006-01-02-15-04-05")
	} else {
		stem = strconv.Itoa(s.trackNumber)
	}

	var finalWavPath = s.cfg.Prefix + stem + ".wav"
	var detailsPath = s.cfg.Prefix + stem + ".details"

	if err := os.Rename(s.wavPath, finalWavPath); err != nil {
		return err
	}
	s.wavPath = finalWavPath

	if err := writeDetails(detailsPath, track); err != nil {
		return err
	}

	if track.hasFirstDateTime {
		if err := os.Chtimes(finalWavPath, track.firstDateTime, track.firstDateTime); err != nil {
			return err
		}
		if err := os.Chtimes(detailsPath, track.firstDateTime, track.firstDateTime); err != nil {
			return err
		}
	}

	if s.cfg.LogPath != "" {
		if err := appendTrackLog(s.cfg.LogPath, s.trackNumber, finalWavPath, track); err != nil {
			return err
		}
	}

	return nil
}

// appendTrackLog appends one CSV row per finalized track to logPath,
// writing the header only the first time the file is created - the
// same "open for append, header only if new" idiom as Samoyed's
// log.go log_write.
func appendTrackLog(logPath string, trackNumber int, wavPath string, track *TrackState) error {
	var needsHeader = false
	if stat, err := os.Stat(logPath); err != nil || stat.Size() == 0 {
		needsHeader = true
	}

	var f, err = os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, "track_number,wav_path,sampling_frequency,channels,samples,quantization,emphasis,program_number,first_date,last_date,first_frame,last_frame"); err != nil {
			return err
		}
	}

	var programNumber = "--"
	if track.info.HasProgramNumber {
		programNumber = strconv.Itoa(track.info.ProgramNumber)
	}

	var firstDate, lastDate = "--", "--"
	if track.hasFirstDateTime {
		firstDate = formatCtime(track.firstDateTime)
	}
	if track.info.HasDateTime {
		lastDate = formatCtime(track.info.DateTime)
	}

	_, err = fmt.Fprintf(f, "%d,%s,%d,%d,%d,%s,%s,%s,%s,%s,%d,%d\n",
		trackNumber, wavPath, track.info.SamplingFrequency, track.info.Channels,
		track.nSamples, track.info.Encoding, track.info.Emphasis, programNumber,
		firstDate, lastDate, track.firstFrameNumber, track.lastFrameNumber)
	return err
}

// wavHeader builds a 44-byte RIFF/WAVE/fmt /data header for 16-bit PCM
// (spec §4.5, §6). Always returns a freshly allocated slice - no
// shared mutable static buffer (spec §9 "Fragile shared-byte writes").
func wavHeader(sampleCount int64, channels, sampleRate int) []byte {
	const bitsPerSample = 16

	var dataLength = sampleCount * int64(channels) * 2
	var byteRate = sampleRate * channels * bitsPerSample / 8
	var blockAlign = channels * bitsPerSample / 8

	var h = make([]byte, 44)
	copy(h[0:4], "RIFF")
	putUint32LE(h[4:8], uint32(36+dataLength))
	copy(h[8:12], "WAVE")
	copy(h[12:16], "fmt ")
	putUint32LE(h[16:20], 16) // fmt chunk size
	putUint16LE(h[20:22], 1)  // PCM
	putUint16LE(h[22:24], uint16(channels))
	putUint32LE(h[24:28], uint32(sampleRate))
	putUint32LE(h[28:32], uint32(byteRate))
	putUint16LE(h[32:34], uint16(blockAlign))
	putUint16LE(h[34:36], bitsPerSample)
	copy(h[36:40], "data")
	putUint32LE(h[40:44], uint32(dataLength))

	return h
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putUint16LE(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// writeDetails writes the plain-text .details sidecar in the key
// order spec §6 specifies.
func writeDetails(path string, track *TrackState) error {
	var f, err = os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var programNumber = "--"
	if track.info.HasProgramNumber {
		programNumber = strconv.Itoa(track.info.ProgramNumber)
	}

	var firstDate, lastDate = "--", "--"
	if track.hasFirstDateTime {
		firstDate = formatCtime(track.firstDateTime)
	}
	if track.info.HasDateTime {
		lastDate = formatCtime(track.info.DateTime)
	}

	var lines = []string{
		fmt.Sprintf("Sampling frequency: %d", track.info.SamplingFrequency),
		fmt.Sprintf("Channels: %d", track.info.Channels),
		fmt.Sprintf("Samples: %d", track.nSamples),
		fmt.Sprintf("Quantization: %s", track.info.Encoding),
		fmt.Sprintf("Emphasis: %s", track.info.Emphasis),
		fmt.Sprintf("Program_number: %s", programNumber),
		fmt.Sprintf("First date: %s", firstDate),
		fmt.Sprintf("Last date: %s", lastDate),
		fmt.Sprintf("First frame: %d", track.firstFrameNumber),
		fmt.Sprintf("Last frame: %d", track.lastFrameNumber),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(f, "%s\n", line); err != nil {
			return err
		}
	}

	return nil
}

func formatCtime(t time.Time) string {
	var formatted, err = strftime.Format(ctimePattern, t)
	if err != nil {
		return t.Format("Mon Jan  2 15:04:05 2006")
	}
	return formatted
}
