package synth

import (
	"bytes"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func shortParams() ThunderParams {
	p := DefaultThunderParams(22050)
	p.Duration = 300 * time.Millisecond
	p.CrackDuration = 50 * time.Millisecond
	return p
}

// TestThunderLength PCM 长度 = 样本数 × 4 字节（16 位立体声）
func TestThunderLength(t *testing.T) {
	p := shortParams()
	pcm := Thunder(1, p)

	want := beep.SampleRate(p.SampleRate).N(p.Duration) * 4
	if len(pcm) != want {
		t.Errorf("pcm length = %d, 期望 %d", len(pcm), want)
	}
}

func TestThunderDeterministic(t *testing.T) {
	p := shortParams()
	a := Thunder(7, p)
	b := Thunder(7, p)
	if !bytes.Equal(a, b) {
		t.Error("same seed should produce identical pcm")
	}

	c := Thunder(8, p)
	if bytes.Equal(a, c) {
		t.Error("different seeds should produce different pcm")
	}
}

func TestThunderNotSilent(t *testing.T) {
	pcm := Thunder(3, shortParams())
	if bytes.Count(pcm, []byte{0}) == len(pcm) {
		t.Error("thunder should not be silent")
	}
}

func TestThunderZeroVolume(t *testing.T) {
	p := shortParams()
	p.Volume = 0
	pcm := Thunder(3, p)
	if len(pcm) == 0 {
		t.Fatal("expected pcm data")
	}
	for i, b := range pcm {
		if b != 0 {
			t.Fatalf("byte %d = %d, 期望静音", i, b)
		}
	}
}

func TestRenderPCMClamps(t *testing.T) {
	loud := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{4, -4}
		}
		return len(samples), true
	})
	pcm := RenderPCM(beep.Take(2, loud))
	want := []byte{0xFF, 0x7F, 0x01, 0x80, 0xFF, 0x7F, 0x01, 0x80}
	if !bytes.Equal(pcm, want) {
		t.Errorf("pcm = %v, 期望 %v", pcm, want)
	}
}
