// ABOUTME: Audio processing package for track decoding and playback
// ABOUTME: Provides PCM types shared by the decode, resample and output packages

// Package audio provides PCM audio types and sample conversions.
//
// All decoders output int32 samples in 24-bit range for consistent
// processing regardless of the source bit depth.
package audio
