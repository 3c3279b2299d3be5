package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingScene records calls made by the SceneManager.
type recordingScene struct {
	updates   int
	draws     int
	disposed  bool
	deltaTime float64
}

func (s *recordingScene) Update(deltaTime float64) {
	s.updates++
	s.deltaTime = deltaTime
}

func (s *recordingScene) Draw(screen *ebiten.Image) {
	s.draws++
}

func (s *recordingScene) Dispose() {
	s.disposed = true
}

// TestSceneManagerForwards verifies Update and Draw reach the active scene.
func TestSceneManagerForwards(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("Expected no scene initially")
	}

	scene := &recordingScene{}
	sm.SwitchTo(scene)
	sm.Update(1.0 / 60.0)
	sm.Draw(ebiten.NewImage(16, 16))

	if scene.updates != 1 || scene.draws != 1 {
		t.Errorf("updates=%d draws=%d, want 1 and 1", scene.updates, scene.draws)
	}
	if scene.deltaTime != 1.0/60.0 {
		t.Errorf("deltaTime = %v", scene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies a manager without a scene does not panic.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(16, 16))
}

// TestSceneManagerSwitchDisposes verifies the outgoing scene is disposed.
func TestSceneManagerSwitchDisposes(t *testing.T) {
	sm := NewSceneManager()
	first := &recordingScene{}
	second := &recordingScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	if first.disposed {
		t.Error("Switching to the same scene should not dispose it")
	}

	sm.SwitchTo(second)
	if !first.disposed {
		t.Error("Outgoing scene was not disposed")
	}
	sm.Update(0.016)
	if first.updates != 0 || second.updates != 1 {
		t.Errorf("first=%d second=%d updates", first.updates, second.updates)
	}
}
