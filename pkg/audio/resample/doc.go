// ABOUTME: Resampling package documentation
// ABOUTME: Linear interpolation resampler for sample rate conversion

// Package resample converts audio between sample rates using linear
// interpolation. Source tracks are brought to the 48kHz the Opus encoder
// requires.
package resample
