// Copyright 2022 Nikolas Koesling. All Rights Reserved.
// Licensed under the MIT (LICENSE) license.

package invert

import "encoding/binary"

const wordSize = 8

// Bytes replaces every byte of p with its bitwise complement, in place.
func Bytes(p []byte) {
	var n = len(p) &^ (wordSize - 1)
	for i := 0; i < n; i += wordSize {
		w := binary.LittleEndian.Uint64(p[i:])
		binary.LittleEndian.PutUint64(p[i:], ^w)
	}
	for i := n; i < len(p); i++ {
		p[i] = ^p[i]
	}
}
