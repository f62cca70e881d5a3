package common

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	Uint32ByteSize = 4
	Uint64ByteSize = 8
)

// Uint64ToBytes converts a uint64 to a byte slice
func Uint64ToBytes(num uint64) []byte {
	bytes := make([]byte, Uint64ByteSize)
	binary.BigEndian.PutUint64(bytes, num)

	return bytes
}

// Uint32ToBytes converts a uint32 to a byte slice in big-endian order
func Uint32ToBytes(num uint32) []byte {
	bytes := make([]byte, Uint32ByteSize)
	binary.BigEndian.PutUint32(bytes, num)

	return bytes
}

// SafeUint32 narrows a block number to uint32, failing instead of truncating.
func SafeUint32(num uint64) (uint32, error) {
	if num > math.MaxUint32 {
		return 0, fmt.Errorf("value %d overflows uint32", num)
	}
	return uint32(num), nil
}
