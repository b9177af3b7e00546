// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// fade is the attack and release length as a share of the tone.
const fade = 0.1

// Samples renders t as mono samples in [-1, 1] at sampleRate,
// with a linear attack and release to avoid clicks.
func Samples(t Tone, sampleRate int) []float64 {
	n := int(int64(t.Duration) * int64(sampleRate) / int64(time.Second))
	if n <= 0 {
		return nil
	}
	ramp := int(float64(n) * fade)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		var v float64
		switch t.Wave {
		case Square:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * phase)
		}

		env := 1.0
		if ramp > 0 {
			if i < ramp {
				env = float64(i) / float64(ramp)
			} else if rest := n - 1 - i; rest < ramp {
				env = float64(rest) / float64(ramp)
			}
		}
		out[i] = v * env * t.Volume

		phase += t.Freq / float64(sampleRate)
		phase -= math.Floor(phase)
	}
	return out
}

// PhraseSamples renders tones back to back.
func PhraseSamples(phrase []Tone, sampleRate int) []float64 {
	var out []float64
	for _, t := range phrase {
		out = append(out, Samples(t, sampleRate)...)
	}
	return out
}

// PCM16 renders t as interleaved stereo signed 16-bit little-endian PCM.
func PCM16(t Tone, sampleRate int) []byte {
	return pcm16(Samples(t, sampleRate))
}

// PhrasePCM16 is PCM16 for a whole phrase.
func PhrasePCM16(phrase []Tone, sampleRate int) []byte {
	return pcm16(PhraseSamples(phrase, sampleRate))
}

func pcm16(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := uint16(int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}
