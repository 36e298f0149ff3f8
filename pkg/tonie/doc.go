// ABOUTME: Package documentation for the Tonie container engine
// ABOUTME: Covers header codec, fresh encoding and lossless splicing

// Package tonie reads, writes and splices Toniebox audio containers.
//
// A container is a fixed 4096-byte header region followed by a single
// logical Ogg Opus stream. The hardware player imposes three rules on the
// stream: every page ends on a 4096-byte file boundary, every page carries
// the container's audio id as its stream serial, and the stream has exactly
// one BOS and one EOS page. Violating any of them at a chapter boundary
// halts playback.
//
// Two paths produce such streams. Encode builds one from scratch out of
// audio files (decoded, resampled to 48kHz and Opus-encoded). CombineTracks
// re-frames chapters that are already Opus-encoded without touching their
// packet bytes, so repeated editing never re-encodes audio.
package tonie
