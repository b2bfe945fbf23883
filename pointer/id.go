// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"encoding/binary"
	"hash/fnv"
	"io"
)

// DeriveID returns a stable pointer id for a device type, device id and
// pointer index. The same triple always hashes to the same id, so a
// physical contact keeps its id for its whole lifetime, and distinct
// concurrently active contacts get distinct ids.
func DeriveID(deviceType string, deviceID, pointerIndex int64) uint64 {
	h := fnv.New64a()
	io.WriteString(h, deviceType)
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(deviceID))
	binary.LittleEndian.PutUint64(buf[8:], uint64(pointerIndex))
	h.Write(buf[:])
	return h.Sum64()
}

// MouseID returns the sentinel pointer id reserved for a window's mouse
// channel.
func MouseID() uint64 {
	return DeriveID(TypeMouse, 0, -1)
}
