package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundShatter 玻璃击碎音效ID
const SoundShatter = "SOUND_SHATTER"

// AudioManager 音频管理器
// 职责：
//   - 统一管理音效的注册与播放
//   - 从 SettingsManager 读取音效开关与音量
//
// audioContext 为 nil 时处于静音模式，PlaySound 始终返回 false。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager  // 可为 nil
	sounds          map[string][]byte // 音效ID -> 16位立体声 PCM
	players         map[string]*audio.Player
}

// NewAudioManager 创建新的音频管理器
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		sounds:          make(map[string][]byte),
		players:         make(map[string]*audio.Player),
	}
}

// SampleRate 返回音频上下文采样率（静音模式下返回 0）
func (am *AudioManager) SampleRate() int {
	if am.audioContext == nil {
		return 0
	}
	return am.audioContext.SampleRate()
}

// RegisterSound 注册 PCM 音效，同ID的旧音效会被替换
func (am *AudioManager) RegisterSound(soundID string, pcm []byte) {
	am.sounds[soundID] = pcm
	delete(am.players, soundID)
}

// HasSound 检查音效是否已注册
func (am *AudioManager) HasSound(soundID string) bool {
	_, ok := am.sounds[soundID]
	return ok
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放（音效禁用、未注册或静音模式时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not registered: %s", soundID)
		return false
	}

	if am.audioContext == nil {
		return false
	}

	player, ok := am.players[soundID]
	if !ok {
		player = am.audioContext.NewPlayerFromBytes(pcm)
		am.players[soundID] = player
	}

	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
