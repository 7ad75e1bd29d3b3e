package game

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// SoundData is either a WAV file read from disk or raw 16-bit stereo PCM.
type SoundData struct {
	wav []byte
	pcm []byte
}

type AudioManager struct {
	ctx  *audio.Context
	hit  *SoundData
	wall *SoundData
	goal *SoundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext() *audio.Context {
	// Audio is off unless PONG_ENABLE_AUDIO=1.
	if os.Getenv("PONG_DISABLE_AUDIO") == "1" {
		return nil
	}
	if os.Getenv("PONG_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// NewAudioManager loads hit.wav, wall.wav and goal.wav from soundsDir and
// synthesises a tone for each file that is missing.
func NewAudioManager(soundsDir string) *AudioManager {
	am := &AudioManager{ctx: getAudioContext()}
	am.hit = loadOrTone(soundsDir, "hit.wav", 660, 40*time.Millisecond)
	am.wall = loadOrTone(soundsDir, "wall.wav", 440, 30*time.Millisecond)
	am.goal = loadOrTone(soundsDir, "goal.wav", 220, 350*time.Millisecond)
	return am
}

func loadOrTone(dir, file string, freq float64, d time.Duration) *SoundData {
	if dir != "" {
		if b, err := os.ReadFile(filepath.Join(dir, file)); err == nil {
			return &SoundData{wav: b}
		}
	}
	Tracef("sound %s not found, using %.0f Hz tone", file, freq)
	return &SoundData{pcm: synthTone(freq, d)}
}

func (am *AudioManager) play(sd *SoundData) {
	if am.ctx == nil || sd == nil {
		return
	}
	switch {
	case len(sd.wav) > 0:
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(sd.wav))
		if err != nil {
			return
		}
		p, err := am.ctx.NewPlayer(stream)
		if err != nil {
			return
		}
		p.Play()
	case len(sd.pcm) > 0:
		am.ctx.NewPlayerFromBytes(sd.pcm).Play()
	}
}

func (am *AudioManager) PlayHit() {
	if am != nil {
		am.play(am.hit)
	}
}

func (am *AudioManager) PlayWall() {
	if am != nil {
		am.play(am.wall)
	}
}

func (am *AudioManager) PlayGoal() {
	if am != nil {
		am.play(am.goal)
	}
}

// synthTone renders a quiet sine tone as 16-bit little-endian stereo PCM.
func synthTone(freq float64, d time.Duration) []byte {
	sr := beep.SampleRate(sampleRate)
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil
	}
	tone := &effects.Volume{Streamer: beep.Take(sr.N(d), sine), Base: 2, Volume: -2}
	return encodePCM(tone)
}

func encodePCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				x := int16(v * math.MaxInt16)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok {
			return out
		}
	}
}
