package game

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// SynthesizeCrack 生成玻璃碎裂音效
//
// 输出为 16 位小端立体声 PCM，可直接交给 audio.Context.NewPlayerFromBytes。
// 声音由指数衰减的白噪声叠加若干随机"脆响"组成，相同 seed 产生相同结果。
func SynthesizeCrack(sampleRate int, duration time.Duration, seed int64) []byte {
	if sampleRate <= 0 || duration <= 0 {
		return nil
	}

	samples := int(float64(sampleRate) * duration.Seconds())
	buf := make([]byte, samples*4)
	rng := rand.New(rand.NewSource(seed))

	// 衰减常数：在 duration 结束时约降到 1%
	decay := math.Log(100) / float64(samples)

	// 脆响：短促的高幅噪声，集中在前 40%
	const clicks = 6
	clickAt := make([]int, clicks)
	for i := range clickAt {
		clickAt[i] = rng.Intn(samples*2/5 + 1)
	}
	clickLen := sampleRate / 200

	for i := 0; i < samples; i++ {
		env := math.Exp(-decay * float64(i))
		v := (rng.Float64()*2 - 1) * 0.6 * env

		for _, at := range clickAt {
			if i >= at && i < at+clickLen {
				v += (rng.Float64()*2 - 1) * 0.4 * env
			}
		}

		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}

	return buf
}
