package options

import (
	"flag"
	"testing"
)

func TestRegisterDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := Register(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if *opts.TexturePath != DefaultTexturePath {
		t.Errorf("texture = %q, want %q", *opts.TexturePath, DefaultTexturePath)
	}
	if *opts.ShaderPath != DefaultShaderPath {
		t.Errorf("shader = %q, want %q", *opts.ShaderPath, DefaultShaderPath)
	}
	if opts.Recording() {
		t.Error("recording enabled without -record")
	}
}

func TestRecordingFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := Register(fs)
	if err := fs.Parse([]string{"-record", "out.mp4", "-fps", "60", "-duration", "2.5"}); err != nil {
		t.Fatal(err)
	}
	if !opts.Recording() {
		t.Fatal("expected recording mode")
	}
	if *opts.FPS != 60 || *opts.Duration != 2.5 {
		t.Errorf("fps/duration = %d/%v", *opts.FPS, *opts.Duration)
	}
}
