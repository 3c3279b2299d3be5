package game

import (
	"path/filepath"
	"testing"

	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/utils"
)

func thunderClips(dir string) []config.SoundRef {
	return []config.SoundRef{
		{ID: "Thunder1", Path: filepath.Join(dir, "Thunder1.ogg")},
		{ID: "Thunder2", Path: filepath.Join(dir, "Thunder2.ogg")},
		{ID: "Thunder3"},
	}
}

// TestLoadClipsSynthesizesMissingFiles 文件缺失时合成雷声
func TestLoadClipsSynthesizesMissingFiles(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	am := NewAudioManager(rm, NewSettingsManager(config.DefaultThunderConfig()))

	if err := am.LoadClips(thunderClips(t.TempDir()), 1); err != nil {
		t.Fatalf("LoadClips failed: %v", err)
	}

	if got := len(am.ClipIDs()); got != 3 {
		t.Fatalf("ClipIDs: got %d, want 3", got)
	}
	for _, id := range am.ClipIDs() {
		if rm.GetAudioPlayer(id) == nil {
			t.Errorf("Clip %s has no player", id)
		}
	}
}

// TestPickClipUniform 每个片段都会被选中
func TestPickClipUniform(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil), nil)
	if err := am.LoadClips(thunderClips(t.TempDir()), 1); err != nil {
		t.Fatalf("LoadClips failed: %v", err)
	}

	src := utils.NewRandomSource(5)
	counts := make(map[string]int)
	for i := 0; i < 3000; i++ {
		id, err := am.PickClip(src)
		if err != nil {
			t.Fatalf("PickClip failed: %v", err)
		}
		counts[id]++
	}
	for _, id := range []string{"Thunder1", "Thunder2", "Thunder3"} {
		if counts[id] < 800 || counts[id] > 1200 {
			t.Errorf("Clip %s picked %d times, want about 1000", id, counts[id])
		}
	}
}

// TestPlaySoundDisabled 音效关闭时不播放
func TestPlaySoundDisabled(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	sm := NewSettingsManager(config.DefaultThunderConfig())
	am := NewAudioManager(rm, sm)
	if err := am.LoadClips(thunderClips(t.TempDir()), 2); err != nil {
		t.Fatalf("LoadClips failed: %v", err)
	}

	sm.SetSoundEnabled(false)
	if am.PlaySound("Thunder1") {
		t.Error("PlaySound should return false when sound is disabled")
	}
	if am.PlayRandom(utils.NewRandomSource(1)) {
		t.Error("PlayRandom should return false when sound is disabled")
	}
}

func TestPlaySoundUnknown(t *testing.T) {
	am := NewAudioManager(NewResourceManager(testAudioContext), nil)
	if am.PlaySound("Missing") {
		t.Error("PlaySound should return false for unknown sound")
	}
	if am.PlayRandom(utils.NewRandomSource(1)) {
		t.Error("PlayRandom should return false without clips")
	}
}
