// ABOUTME: Ogg CRC-32 checksum implementation
// ABOUTME: Uses the Ogg polynomial 0x04C11DB7, unreflected, zero init

package ogg

// crcTable is the lookup table for the Ogg flavour of CRC-32
// (polynomial 0x04C11DB7, no bit reflection, initial value 0).
var crcTable [256]uint32

func init() {
	const poly = uint32(0x04C11DB7)
	for i := range crcTable {
		c := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if c&0x80000000 != 0 {
				c = c<<1 ^ poly
			} else {
				c <<= 1
			}
		}
		crcTable[i] = c
	}
}

// Checksum computes the Ogg CRC-32 of data.
func Checksum(data []byte) uint32 {
	var c uint32
	for _, b := range data {
		c = c<<8 ^ crcTable[byte(c>>24)^b]
	}
	return c
}
