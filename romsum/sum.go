package romsum

import "encoding/binary"

const fillByte = 0xFF

/* Sum32 returns the big-endian 32-bit word sum of b modulo 2^32. A trailing partial
 * word is padded with 0xFF, the caller's buffer is never touched. */
func Sum32(b []byte) uint32 {
	var sum uint32

	n := len(b) &^ 3
	for i := 0; i < n; i += 4 {
		sum += binary.BigEndian.Uint32(b[i:])
	}

	if n < len(b) {
		tail := [4]byte{fillByte, fillByte, fillByte, fillByte}
		copy(tail[:], b[n:])
		sum += binary.BigEndian.Uint32(tail[:])
	}

	return sum
}

/* RealEnd returns the length of b without its trailing 0xFF fill, rounded up to 4 */
func RealEnd(b []byte) int {
	end := len(b)
	for end > 0 && b[end-1] == fillByte {
		end--
	}
	return alignUp(end)
}

func alignUp(v int) int {
	return (v + 3) &^ 3
}

/* padImage returns b if its length is word aligned, otherwise a 0xFF padded copy */
func padImage(b []byte) []byte {
	if len(b)&3 == 0 {
		return b
	}

	out := make([]byte, alignUp(len(b)))
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = fillByte
	}
	return out
}
