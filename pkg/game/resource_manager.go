package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/embedded"
	"github.com/decker502/thunder/pkg/scenegraph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// ResourceManager is responsible for centralized management of the bolt textures
// and thunder sounds. Resources are loaded once and reused.
//
// Lookup order for every file is the embedded data tree first, then the local disk.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only touched from the game loop.
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // Cache for loaded images: path -> Image
	audioCache   map[string]*audio.Player // Cache for loaded sound players: ID -> Player
	audioContext *audio.Context           // Global audio context, nil in headless mode
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context. May be nil, in which case sounds are skipped.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
	}
}

// AudioContext returns the audio context used for decoding, or nil.
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// openResource reads a resource fully into memory, preferring embedded data.
func openResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// resourceExists reports whether path can be found in embedded data or on disk.
func resourceExists(path string) bool {
	if path == "" {
		return false
	}
	if embedded.IsInitialized() && embedded.Exists(path) {
		return true
	}
	_, err := os.Stat(path)
	return err == nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error if the file cannot be opened or decoded. Does not panic.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := openResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadTextures builds the cap/segment texture pair.
// Configured image files replace the procedural glow art; an empty path keeps the
// procedural texture for that slot.
func (rm *ResourceManager) LoadTextures(cfg config.TextureAssetConfig) (*scenegraph.TextureSet, error) {
	textures := scenegraph.NewProceduralTextures()

	if cfg.Cap != "" {
		img, err := rm.LoadImage(cfg.Cap)
		if err != nil {
			return nil, fmt.Errorf("cap texture: %w", err)
		}
		textures.Cap = img
	}
	if cfg.Segment != "" {
		img, err := rm.LoadImage(cfg.Segment)
		if err != nil {
			return nil, fmt.Errorf("segment texture: %w", err)
		}
		textures.Segment = img
	}
	return textures, nil
}

// LoadSoundEffect decodes a one-shot sound effect and caches its player under id.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg), resampled to the context rate.
func (rm *ResourceManager) LoadSoundEffect(id, path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[id]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for sound %s", id)
	}

	audioData, err := openResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithSampleRate(rm.audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithSampleRate(rm.audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[id] = player
	return player, nil
}

// RegisterPCM caches a player over raw 16-bit stereo PCM (e.g. a synthesized clip).
func (rm *ResourceManager) RegisterPCM(id string, pcm []byte) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for sound %s", id)
	}
	player := rm.audioContext.NewPlayerFromBytes(pcm)
	rm.audioCache[id] = player
	log.Printf("[ResourceManager] Registered PCM sound %s (%d bytes)", id, len(pcm))
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded sound player, or nil.
func (rm *ResourceManager) GetAudioPlayer(id string) *audio.Player {
	return rm.audioCache[id]
}
