// Package recorder streams raw RGBA frames into an ffmpeg encoder.
package recorder

import (
	"fmt"
	"io"
	"log"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Settings describes one capture.
type Settings struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	FFMPEGPath string
}

func (s Settings) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", s.Width, s.Height)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", s.FPS)
	}
	if s.OutputFile == "" {
		return fmt.Errorf("no output file")
	}
	return nil
}

// FrameSize is the byte length of one RGBA frame.
func (s Settings) FrameSize() int {
	return s.Width * s.Height * 4
}

// getArgs returns the ffmpeg input and output arguments. Frames are read back
// bottom row first, so the output is flipped.
func getArgs(s Settings) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", s.Width, s.Height),
		"framerate": strconv.Itoa(s.FPS),
	}
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return
}

// Recorder is the consumer end of a capture. Frames written with WriteFrame
// are piped into an ffmpeg process running in its own goroutine.
type Recorder struct {
	settings Settings
	pipe     *io.PipeWriter
	errc     chan error
	frames   int
}

// Start launches ffmpeg and returns a recorder ready for frames.
func Start(s Settings) (*Recorder, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := getArgs(s)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(s.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if s.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(s.FFMPEGPath)
	}

	r := &Recorder{
		settings: s,
		pipe:     pipeWriter,
		errc:     make(chan error, 1),
	}
	go func() {
		err := ffmpegCmd.Run()
		// unblock a writer still waiting on a dead encoder
		pipeReader.CloseWithError(io.ErrClosedPipe)
		r.errc <- err
	}()

	log.Printf("Recording %dx%d@%d to %s", s.Width, s.Height, s.FPS, s.OutputFile)
	return r, nil
}

// WriteFrame sends one RGBA frame to the encoder.
func (r *Recorder) WriteFrame(pixels []byte) error {
	if len(pixels) != r.settings.FrameSize() {
		return fmt.Errorf("frame %d has %d bytes, want %d", r.frames, len(pixels), r.settings.FrameSize())
	}
	if _, err := r.pipe.Write(pixels); err != nil {
		return fmt.Errorf("failed to write frame %d to ffmpeg: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close ends the stream and waits for ffmpeg to finish.
func (r *Recorder) Close() error {
	r.pipe.Close()
	if err := <-r.errc; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	log.Printf("Encoded %d frames to %s", r.frames, r.settings.OutputFile)
	return nil
}
