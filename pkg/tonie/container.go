// ABOUTME: Top-level container read, write and validation
// ABOUTME: Composes the header codec with the audio region and atomic file replace

package tonie

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Container is an in-memory Tonie file: decoded header plus the raw audio
// region. Audio is nil when the file was read with readAudio=false.
type Container struct {
	Header *Header
	Audio  []byte

	// HashValid reports whether the recomputed SHA1 of the audio region
	// matches Header.Hash. A mismatch is not fatal; callers decide
	// whether to warn or refuse. Only meaningful when Audio is loaded.
	HashValid bool
}

// ReadFile reads a container from disk. With readAudio=false only the
// 4096-byte header region is read and decoded; the audio region stays on
// disk and Audio is nil.
func ReadFile(path string, readAudio bool) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	region := make([]byte, HeaderRegionSize)
	if _, err := io.ReadFull(f, region); err != nil {
		return nil, fmt.Errorf("%w: %s too small for a header region", ErrCorruptHeader, path)
	}
	header, err := DecodeHeader(region)
	if err != nil {
		return nil, err
	}

	c := &Container{Header: header}
	if !readAudio {
		return c, nil
	}

	audio, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read audio region: %w", err)
	}
	c.Audio = audio
	sum := sha1.Sum(audio)
	c.HashValid = bytes.Equal(sum[:], header.Hash)
	return c, nil
}

// Bytes serializes the container: the re-encoded header region followed
// by the audio region. Header field edits made since reading are picked
// up here without touching the audio bytes.
func (c *Container) Bytes() ([]byte, error) {
	if c.Audio == nil {
		return nil, ErrNoAudio
	}
	region, err := c.Header.Encode()
	if err != nil {
		return nil, err
	}
	return append(region, c.Audio...), nil
}

// WriteFile writes the container to path. The data goes to a scratch file
// in the same directory first and replaces the target atomically, so a
// failure mid-write never destroys an existing valid file.
func (c *Container) WriteFile(path string) error {
	data, err := c.Bytes()
	if err != nil {
		return err
	}

	scratch := path + ".tmp-" + uuid.New().String()
	if err := os.WriteFile(scratch, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(scratch, path); err != nil {
		os.Remove(scratch)
		return err
	}
	return nil
}

// Rekey assigns a new audio id: every page's stream serial is rewritten
// (with CRCs recomputed) and the header gets the new id, hash and length.
// Opus packet bytes are not touched.
func (c *Container) Rekey(newID uint32) error {
	if c.Audio == nil {
		return ErrNoAudio
	}
	audio, err := UpdateStreamSerial(c.Audio, newID, false)
	if err != nil {
		return err
	}
	c.Audio = audio
	c.Header.AudioID = newID
	c.refreshHeader()
	return nil
}

// refreshHeader recomputes the hash and length fields from the current
// audio region.
func (c *Container) refreshHeader() {
	sum := sha1.Sum(c.Audio)
	c.Header.Hash = sum[:]
	c.Header.AudioLength = int32(len(c.Audio))
	c.HashValid = true
}
