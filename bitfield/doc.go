// Package bitfield provides a growable byte buffer that is addressable at bit
// granularity. Unsigned integers of up to 64 bits can be packed into, and
// unpacked from, any inclusive bit range of the buffer, following the
// MSB-first pattern: bit 0 is the most-significant bit of byte 0, bit 8 is the
// most-significant bit of byte 1, and so on.
//
// Whole buffers can be combined with AND, OR, XOR and NOT, and logically
// shifted by an arbitrary number of bits. Buffers of different lengths are
// combined anchored at their last (least-significant) byte.
package bitfield
