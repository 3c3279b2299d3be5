// Package synth 程序合成雷声
//
// 没有音频文件时，用噪声 + 低通 + 包络拼出一段雷声，再渲染成 16 位立体声 PCM，
// 交给 ebiten 的 audio.Context 播放。
package synth

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// ThunderParams 雷声合成参数
type ThunderParams struct {
	SampleRate int
	// Duration 整段时长
	Duration time.Duration
	// CrackDuration 开头炸裂声时长
	CrackDuration time.Duration
	// Cutoff 轰鸣低通系数 (0~1)，越小越闷
	Cutoff float64
	// Volume 线性音量 (0~1)
	Volume float64
}

// DefaultThunderParams 返回默认参数
func DefaultThunderParams(sampleRate int) ThunderParams {
	return ThunderParams{
		SampleRate:    sampleRate,
		Duration:      2200 * time.Millisecond,
		CrackDuration: 180 * time.Millisecond,
		Cutoff:        0.02,
		Volume:        0.8,
	}
}

// noise 白噪声，长度固定
type noise struct {
	rng      *rand.Rand
	position int
	total    int
}

func newNoise(rng *rand.Rand, samples int) beep.Streamer {
	return &noise{rng: rng, total: samples}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.position >= n.total {
			return i, i > 0
		}
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
		n.position++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// lowPass 一阶低通滤波
type lowPass struct {
	streamer beep.Streamer
	alpha    float64
	state    [2]float64
	// gain 补偿滤波后的能量损失
	gain float64
}

func (l *lowPass) Stream(samples [][2]float64) (int, bool) {
	n, ok := l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			l.state[ch] += l.alpha * (samples[i][ch] - l.state[ch])
			samples[i][ch] = l.state[ch] * l.gain
		}
	}
	return n, ok
}

func (l *lowPass) Err() error { return l.streamer.Err() }

// decay 快速起音后指数衰减，带少量随机的二次轰鸣
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	// rumbleAt 二次轰鸣起点（样本）
	rumbleAt int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if d.position < d.attack && d.attack > 0 {
			vol = float64(d.position) / float64(d.attack)
		}
		progress := float64(d.position) / float64(d.total)
		vol *= math.Exp(-4 * progress)
		if d.rumbleAt > 0 && d.position > d.rumbleAt {
			since := float64(d.position-d.rumbleAt) / float64(d.total)
			vol += 0.5 * math.Exp(-8*since) * (1 - progress)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// volume 线性音量转为 beep 的以 2 为底的对数音量，0 时静音
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v), Silent: false}
}

// NewThunderStreamer 构造雷声流
//
// 同一个 seed 得到同样的波形。
func NewThunderStreamer(seed int64, p ThunderParams) beep.Streamer {
	rate := beep.SampleRate(p.SampleRate)
	rng := rand.New(rand.NewSource(seed))
	total := rate.N(p.Duration)
	crackTotal := rate.N(p.CrackDuration)

	// 开头的炸裂声：未滤波的噪声，极短
	crack := &decay{
		streamer: newNoise(rng, crackTotal),
		attack:   rate.N(2 * time.Millisecond),
		total:    crackTotal,
	}

	// 低沉的轰鸣，二次轰鸣位置随机
	rumble := &decay{
		streamer: &lowPass{streamer: newNoise(rng, total), alpha: p.Cutoff, gain: 6},
		attack:   rate.N(40 * time.Millisecond),
		total:    total,
		rumbleAt: int(float64(total) * (0.15 + rng.Float64()*0.25)),
	}

	mixed := beep.Mix(
		volume(crack, 0.35),
		volume(rumble, 0.9),
	)
	return volume(beep.Take(total, mixed), p.Volume)
}

// RenderPCM 将流渲染为 16 位小端立体声 PCM
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 512*4)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			l := int16(math.Round(clampSample(buf[i][0]) * math.MaxInt16))
			r := int16(math.Round(clampSample(buf[i][1]) * math.MaxInt16))
			binary.LittleEndian.PutUint16(frame[0:], uint16(l))
			binary.LittleEndian.PutUint16(frame[2:], uint16(r))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Thunder 合成一段雷声 PCM
func Thunder(seed int64, p ThunderParams) []byte {
	return RenderPCM(NewThunderStreamer(seed, p))
}
