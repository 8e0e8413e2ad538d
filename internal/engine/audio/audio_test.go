package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

func TestVolumeToGain(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
		{0.0, -100},
	}

	for _, tt := range tests {
		if got := volumeToGain(tt.vol); got != tt.want {
			t.Errorf("volumeToGain(%f) = %f, want %f", tt.vol, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestVolumeAndMute(t *testing.T) {
	p := New(2, false)
	if p.Volume() != 1 {
		t.Errorf("volume = %f, want 1 (clamped)", p.Volume())
	}
	p.SetVolume(0.3)
	if p.Volume() != 0.3 {
		t.Errorf("volume = %f, want 0.3", p.Volume())
	}
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("not muted")
	}
}

func writeWAV(t *testing.T, path string, rate beep.SampleRate) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Silence(rate.N(50*time.Millisecond)), format); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
}

func TestLoadCues(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, CueArm.File()), DefaultSampleRate)
	writeWAV(t, filepath.Join(dir, CueWhoosh.File()), 22050)
	if err := os.WriteFile(filepath.Join(dir, CueCommit.File()), []byte("RIFF junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(1, false)
	p.LoadCues(os.DirFS(dir))

	if !p.Loaded(CueArm) || !p.Loaded(CueWhoosh) {
		t.Error("valid cues not loaded")
	}
	if p.Loaded(CueCommit) {
		t.Error("corrupt cue loaded")
	}
	if p.Loaded(Cue(7)) {
		t.Error("unknown cue reported loaded")
	}

	// The speaker was never opened, so playback is skipped.
	if err := p.Play(CueArm); err == nil {
		t.Error("Play without Init should be skipped")
	}
}

func TestCueFiles(t *testing.T) {
	want := map[Cue]string{CueArm: "arm.wav", CueCommit: "commit.wav", CueWhoosh: "whoosh.wav"}
	for c, name := range want {
		if c.File() != name {
			t.Errorf("%v.File() = %q, want %q", c, c.File(), name)
		}
	}
}
