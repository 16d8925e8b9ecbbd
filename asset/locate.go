package asset

import (
	"os"
	"path/filepath"
	"strings"
)

// SoundExtensions are tried in order when resolving a sound base name
var SoundExtensions = []string{".wav", ".ogg"}

const musicExtension = ".ogg"

// dataDirCandidates are probed relative to the working directory
var dataDirCandidates = []string{
	filepath.Join("woger", "data"),
	"data",
}

// DataDir returns the first existing data directory, or "" if none is found
func DataDir() string {
	for _, p := range dataDirCandidates {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p
		}
	}
	return ""
}

// SoundDir returns the sound directory under a data directory
func SoundDir(dataDir string) string {
	return filepath.Join(dataDir, "sounds")
}

// MusicDir returns the music directory under a data directory
func MusicDir(dataDir string) string {
	return filepath.Join(dataDir, "music")
}

// FindSound resolves a base name to an existing file by trying SoundExtensions in order
func FindSound(dir, name string) (string, bool) {
	for _, ext := range SoundExtensions {
		p := filepath.Join(dir, name+ext)
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

// SoundNames lists sound base names available in dir, grouped by extension order.
// A name present under several extensions is listed once.
func SoundNames(dir string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, ext := range SoundExtensions {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			continue
		}
		for _, m := range matches {
			name := strings.TrimSuffix(filepath.Base(m), ext)
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// MusicPath resolves a track name under dir, preferring name+".ogg" when that file exists
func MusicPath(dir, name string) string {
	p := filepath.Join(dir, name)
	if withExt := p + musicExtension; fileExists(withExt) {
		return withExt
	}
	return p
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
