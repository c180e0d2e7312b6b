package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/memorystars/ecs/component"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed *.wav
var assetsFS embed.FS

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

var (
	faceOnce   sync.Once
	faceSource *text.GoTextFaceSource
	faceErr    error
)

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadAudioPlayer loads an embedded audio asset and creates a looping
// player for it.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	clean := strings.ToLower(cleanAssetPath(path))
	reader := bytes.NewReader(b)

	if strings.HasSuffix(clean, ".wav") {
		stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return audioContext.NewPlayerFromBytes(b), nil
}

// LoadTrack is the music system's track loader.
func LoadTrack(name string) (component.Track, error) {
	p, err := LoadAudioPlayer(name)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Face returns the UI font at the given size.
func Face(size float64) (text.Face, error) {
	faceOnce.Do(func() {
		faceSource, faceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if faceErr != nil {
		return nil, fmt.Errorf("load font: %w", faceErr)
	}
	return &text.GoTextFace{Source: faceSource, Size: size}, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
