package clifford

// Key is the canonical, hashable fingerprint of an Element. Two Elements
// compare Key-equal iff they are the same group element. The underlying
// bytes follow the packing contract documented in doc.go; Keys are safe to
// persist and to use as map keys.
type Key string

// Key packs the tableau into its canonical byte form: rows X_0..X_{n-1},
// Z_0..Z_{n-1}; per row the bits x_0..x_{n-1}, z_0..z_{n-1}, sign; packed
// MSB-first with the trailing byte zero-padded.
//
// Pure function; no floating point, no allocation beyond the result.
// Complexity: O(n²) bits.
func (e *Element) Key() Key {
	n := e.qubits
	nbits := 2 * n * (2*n + 1)
	buf := make([]byte, 0, (nbits+7)/8)
	var cur byte
	used := 0
	push := func(bit bool) {
		cur <<= 1
		if bit {
			cur |= 1
		}
		if used++; used == 8 {
			buf = append(buf, cur)
			cur, used = 0, 0
		}
	}
	for _, r := range e.rows {
		for k := 0; k < n; k++ {
			push(r.x&(1<<k) != 0)
		}
		for k := 0; k < n; k++ {
			push(r.z&(1<<k) != 0)
		}
		push(r.neg)
	}
	if used > 0 {
		buf = append(buf, cur<<(8-used))
	}

	return Key(buf)
}
