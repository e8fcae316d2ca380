package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
)

// AudioConfig holds runtime audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundStart: 0.6,
			core.SoundBell:  1.0,
			core.SoundBuzz:  0.8,
			core.SoundCoin:  0.5,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("SNAKE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-effect volumes as JSON, keyed by effect name
	if effectVols := os.Getenv("SNAKE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("SNAKE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
