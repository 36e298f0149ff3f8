// ABOUTME: Audio decoder package for multiple source formats
// ABOUTME: Decodes MP3, FLAC, WAV and Ogg Opus files to PCM tracks

// Package decode reads whole audio files into PCM tracks.
//
// Supported formats: MP3, FLAC, WAV (16/24-bit PCM), Ogg Opus.
// Output is always int32 samples in 24-bit range.
//
// Example:
//
//	track, err := decode.Open("chapter1.mp3")
package decode
