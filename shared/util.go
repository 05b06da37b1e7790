package shared

func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

func MinUint(x, y uint) uint {
	if x < y {
		return x
	}
	return y
}

func MaxUint(x, y uint) uint {
	if x > y {
		return x
	}
	return y
}

// ByteLength returns the number of bytes needed to hold numBits bits.
func ByteLength(numBits uint64) uint64 {
	return (numBits + BitsPerByte - 1) / BitsPerByte
}
