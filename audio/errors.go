package audio

import "errors"

// Sentinel errors
var (
	ErrSoundNotFound      = errors.New("sound not found")
	ErrChannelUnavailable = errors.New("no channel available")
	ErrUnsupportedFormat  = errors.New("unsupported audio format")
	ErrNoMusicLoaded      = errors.New("no music loaded")
)
