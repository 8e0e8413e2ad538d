// Package audio plays the short interface cues: arming a face, committing
// a selection and the transition whoosh.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/logger"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Cue identifies an interface sound.
type Cue int

// Cues.
const (
	CueArm Cue = iota
	CueCommit
	CueWhoosh
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueArm:
		return "arm"
	case CueCommit:
		return "commit"
	case CueWhoosh:
		return "whoosh"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// File returns the cue's file name in the sound directory.
func (c Cue) File() string {
	return c.String() + ".wav"
}

// Player holds decoded cues and mixes them onto the speaker.
type Player struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	volume float64
	muted  bool

	mixer *beep.Mixer
	cues  [cueCount]*beep.Buffer
	log   *zap.Logger
}

// New creates a player at volume (0.0 to 1.0).
func New(volume float64, muted bool) *Player {
	return &Player{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		muted:      muted,
		mixer:      &beep.Mixer{},
		log:        logger.Named("audio"),
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// LoadCues decodes every cue found in fsys. Missing or undecodable files are
// skipped; the cue then stays silent.
func (p *Player) LoadCues(fsys fs.FS) {
	for c := Cue(0); c < cueCount; c++ {
		buf, err := p.decode(fsys, c.File())
		if err != nil {
			p.log.Debug("cue unavailable", zap.Stringer("cue", c), zap.Error(err))
			continue
		}
		p.mu.Lock()
		p.cues[c] = buf
		p.mu.Unlock()
	}
}

func (p *Player) decode(fsys fs.FS, name string) (*beep.Buffer, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	var src beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		src = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: p.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return buf, nil
}

// Loaded reports whether c has sound data.
func (p *Player) Loaded(c Cue) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return c >= 0 && c < cueCount && p.cues[c] != nil
}

// errNotPlayable is returned by Play for cues that are skipped.
var errNotPlayable = errors.New("cue not playable")

// Play mixes c in. Unloaded cues, a muted player or an unopened speaker make
// it a no-op that returns an error the caller may ignore.
func (p *Player) Play(c Cue) error {
	p.mu.RLock()
	ready := p.initialized && !p.muted && c >= 0 && c < cueCount && p.cues[c] != nil
	var buf *beep.Buffer
	if ready {
		buf = p.cues[c]
	}
	vol := p.volume
	p.mu.RUnlock()

	if !ready {
		return errNotPlayable
	}

	speaker.Lock()
	p.mixer.Add(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   volumeToGain(vol),
		Silent:   vol <= 0,
	})
	speaker.Unlock()
	return nil
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.volume
}

// SetMuted mutes or unmutes the player.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.muted
}

// volumeToGain converts a 0-1 volume to the exponent effects.Volume expects
// with Base 2: 1 -> 0, 0.5 -> -1.
func volumeToGain(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
