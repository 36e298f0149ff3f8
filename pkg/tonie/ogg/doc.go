// ABOUTME: Package documentation for the Ogg page codec
// ABOUTME: Describes page parsing, serialization and block padding

// Package ogg implements the Ogg page layer used by Tonie containers.
//
// Pages are parsed and serialized individually. On top of plain RFC 3533
// framing the package implements the 4096-byte block padding the Toniebox
// firmware requires: every page must end exactly on a block boundary and no
// page may cross one. Padding is expressed as zero-filled extra segments
// appended to a page, see (*Page).PadToBoundary.
//
// The Ogg CRC-32 uses polynomial 0x04C11DB7 without reflection, which the
// standard library hash/crc32 cannot produce.
package ogg
