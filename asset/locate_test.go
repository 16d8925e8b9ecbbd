package asset

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindSoundExtensionOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "hit1.ogg"))
	touch(t, filepath.Join(dir, "hit1.wav"))
	touch(t, filepath.Join(dir, "goal1.ogg"))

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"hit1", filepath.Join(dir, "hit1.wav"), true},
		{"goal1", filepath.Join(dir, "goal1.ogg"), true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		got, ok := FindSound(dir, tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FindSound(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSoundNamesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "hit1.wav"))
	touch(t, filepath.Join(dir, "hit1.ogg"))
	touch(t, filepath.Join(dir, "powerup1.ogg"))
	touch(t, filepath.Join(dir, "readme.txt"))

	got := SoundNames(dir)
	sort.Strings(got)

	want := []string{"hit1", "powerup1"}
	if len(got) != len(want) {
		t.Fatalf("SoundNames = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SoundNames[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMusicPathFallback(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "theme.ogg"))

	if got := MusicPath(dir, "theme"); got != filepath.Join(dir, "theme.ogg") {
		t.Errorf("MusicPath(theme) = %q", got)
	}
	if got := MusicPath(dir, "intro.wav"); got != filepath.Join(dir, "intro.wav") {
		t.Errorf("MusicPath(intro.wav) = %q", got)
	}
}

func TestDataDirPrefersNestedLayout(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if got := DataDir(); got != "" {
		t.Errorf("DataDir in empty dir = %q, want empty", got)
	}

	if err := os.MkdirAll("data", 0755); err != nil {
		t.Fatal(err)
	}
	if got := DataDir(); got != "data" {
		t.Errorf("DataDir = %q, want data", got)
	}

	if err := os.MkdirAll(filepath.Join("woger", "data"), 0755); err != nil {
		t.Fatal(err)
	}
	if got := DataDir(); got != filepath.Join("woger", "data") {
		t.Errorf("DataDir = %q, want woger/data", got)
	}
}
