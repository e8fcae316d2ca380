package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
)

// waveform maps a phase in [0, 1) to an amplitude in [-1, 1]
type waveform func(phase float64) float64

func squareWave(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func sawWave(phase float64) float64 {
	return 2*phase - 1
}

// voice is one partial of an effect. A nil wave is a pure sine.
type voice struct {
	freq    float64
	gain    float64
	wave    waveform
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// chord is a set of voices sounded together; an effect is a sequence of chords
type chord []voice

// effectScores holds the note layout of every effect
var effectScores = map[core.SoundType][]chord{
	// C5 blip
	core.SoundStart: {
		{{freq: 523.25, gain: 1, length: constants.StartSoundDuration, attack: constants.StartSoundAttack, release: constants.StartSoundRelease}},
	},
	// A5 with an octave overtone that fades first
	core.SoundBell: {
		{
			{freq: 880, gain: 0.7, length: constants.BellSoundDuration, attack: constants.BellSoundAttack, release: constants.BellSoundFundamentalRelease},
			{freq: 1760, gain: 0.3, length: constants.BellSoundDuration, attack: constants.BellSoundAttack, release: constants.BellSoundOvertoneRelease},
		},
	},
	// Two detuned saws beating against each other
	core.SoundBuzz: {
		{
			{freq: 110, gain: 0.5, wave: sawWave, length: constants.BuzzSoundDuration, attack: constants.BuzzSoundAttack, release: constants.BuzzSoundRelease},
			{freq: 116, gain: 0.5, wave: sawWave, length: constants.BuzzSoundDuration, attack: constants.BuzzSoundAttack, release: constants.BuzzSoundRelease},
		},
	},
	// B5 then E6
	core.SoundCoin: {
		{{freq: 987.77, gain: 1, wave: squareWave, length: constants.CoinSoundNote1Duration, attack: constants.CoinSoundAttack, release: constants.CoinSoundNote1Release}},
		{{freq: 1318.51, gain: 1, wave: squareWave, length: constants.CoinSoundNote2Duration, attack: constants.CoinSoundAttack, release: constants.CoinSoundNote2Release}},
	},
}

// periodic is an endless phase-accumulator tone
func periodic(rate beep.SampleRate, freq float64, wave waveform) beep.Streamer {
	step := freq / float64(rate)
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := wave(phase)
			samples[i] = [2]float64{v, v}
			phase += step
			phase -= math.Floor(phase)
		}
		return len(samples), true
	})
}

// gainAt is the linear attack/release ramp scaled by the voice gain
func (v voice) gainAt(pos, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		g = min(g, float64(total-pos)/float64(release))
	}
	return g * v.gain
}

// stream renders the voice for its length, or nil if the tone cannot be built
func (v voice) stream(rate beep.SampleRate) beep.Streamer {
	var src beep.Streamer
	if v.wave == nil {
		tone, err := generators.SineTone(rate, v.freq)
		if err != nil {
			return nil
		}
		src = tone
	} else {
		src = periodic(rate, v.freq, v.wave)
	}

	total := rate.N(v.length)
	attack, release := rate.N(v.attack), rate.N(v.release)
	body := beep.Take(total, src)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := body.Stream(samples)
		for i := 0; i < n; i++ {
			g := v.gainAt(pos, total, attack, release)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// newVolume wraps s in a linear-scale gain; zero or less is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// GetSoundEffect builds a fresh streamer for the effect, nil for unknown types
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	score, ok := effectScores[soundType]
	if !ok {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, len(score))
	for _, c := range score {
		voices := make([]beep.Streamer, 0, len(c))
		for _, v := range c {
			s := v.stream(rate)
			if s == nil {
				return nil
			}
			voices = append(voices, s)
		}
		parts = append(parts, beep.Mix(voices...))
	}

	return newVolume(beep.Seq(parts...), cfg.EffectVolumes[soundType]*cfg.MasterVolume)
}
