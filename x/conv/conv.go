// Package conv formats integers into caller-owned byte slices without fmt or
// strconv, so driver error strings stay usable on MCU builds.
package conv

// AppendInt appends the base-10 representation of n to dst.
func AppendInt(dst []byte, n int64) []byte {
	var buf [20]byte
	return append(dst, Itoa(buf[:], n)...)
}

// AppendHex8 appends n as "0x" followed by two uppercase hex digits.
func AppendHex8(dst []byte, n uint8) []byte {
	const hexd = "0123456789ABCDEF"
	return append(dst, '0', 'x', hexd[n>>4], hexd[n&0xF])
}

// Itoa writes base-10 representation of n into the tail of buf and returns the
// used slice. buf should be length >= 20 for int64.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	var u uint64
	neg := n < 0
	if neg {
		u = uint64(-n)
	} else {
		u = uint64(n)
	}
	d := Utoa(buf, u)
	i := len(buf) - len(d)
	if neg && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}

// Utoa writes base-10 representation of n into the tail of buf.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + (n % 10))
		n /= 10
	}
	return buf[i:]
}
