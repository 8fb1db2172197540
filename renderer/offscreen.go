package renderer

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.3-core/gl"
	options "github.com/richinsley/gltemplate/options"
	"github.com/richinsley/gltemplate/recorder"
	"github.com/schollz/progressbar/v3"
)

// OffscreenRenderer is a fixed-size color+depth framebuffer that frames are
// rendered into and read back from.
type OffscreenRenderer struct {
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width             int
	height            int
	pixels            []byte
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*4),
	}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	gl.GenRenderbuffers(1, &or.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, or.depthRenderbuffer)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete (status 0x%x)", status)
	}
	return or, nil
}

// Bind directs rendering into the offscreen framebuffer.
func (or *OffscreenRenderer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.Viewport(0, 0, int32(or.width), int32(or.height))
}

func (or *OffscreenRenderer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ReadPixels returns the framebuffer contents as tightly packed RGBA, bottom
// row first. The slice is reused by the next call.
func (or *OffscreenRenderer) ReadPixels() []byte {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(or.pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return or.pixels
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
	gl.DeleteRenderbuffers(1, &or.depthRenderbuffer)
}

// RunOffscreen renders a fixed number of frames at a fixed time step into an
// offscreen framebuffer and encodes them to opts.OutputFile.
func (r *Renderer) RunOffscreen(opts *options.AppOptions) error {
	settings := recorder.Settings{
		Width:      r.state.Width,
		Height:     r.state.Height,
		FPS:        *opts.FPS,
		OutputFile: *opts.OutputFile,
		FFMPEGPath: *opts.FFMPEGPath,
	}

	offscreen, err := NewOffscreenRenderer(settings.Width, settings.Height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer offscreen.Destroy()

	rec, err := recorder.Start(settings)
	if err != nil {
		return fmt.Errorf("failed to start recorder: %w", err)
	}

	totalFrames := int(*opts.Duration * float64(*opts.FPS))
	timeStep := 1.0 / float64(*opts.FPS)
	log.Printf("Starting in record mode: %d frames", totalFrames)

	pb := progressbar.Default(int64(totalFrames), "recording")
	defer pb.Close()

	var frameErr error
	for i := 0; i < totalFrames; i++ {
		currentTime := float64(i) * timeStep

		offscreen.Bind()
		r.Update()
		r.RenderFrame(currentTime)
		pixels := offscreen.ReadPixels()
		offscreen.Unbind()

		if frameErr = rec.WriteFrame(pixels); frameErr != nil {
			log.Printf("Error writing frame %d: %v", i, frameErr)
			break
		}
		pb.Add(1)
	}

	if err := rec.Close(); err != nil {
		return err
	}
	return frameErr
}
