package hwio

// 64-bit operations, sized for the block-alive bitmask.
func GetBit64(v uint64, n uint) bool {
	return v>>(n)&0x01 != 0
}

func ClearBit64(v *uint64, n uint) {
	*v &= ^(uint64(1) << n)
}
