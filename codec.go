package statdb

import (
	"bytes"
	"encoding/binary"
)

// The byte layout below is a compatibility contract with existing
// environments: fixed-width native-endian integers, string keys without a
// terminator, string values with one. Do not switch to a self-describing
// encoding.

func encodeStrKey(k string) []byte {
	return []byte(k)
}

func encodeStrVal(v string) []byte {
	buf := make([]byte, len(v)+1)
	copy(buf, v)
	return buf
}

func decodeStrVal(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return string(data)
}

func encodeIntKey(k int32) []byte {
	return encodeI32(k)
}

func encodeI32(v int32) []byte {
	buf := make([]byte, 4)
	binary.NativeEndian.PutUint32(buf, uint32(v))
	return buf
}

func decodeI32(data []byte) int32 {
	return int32(binary.NativeEndian.Uint32(data))
}

func encodeU64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.NativeEndian.PutUint64(buf, v)
	return buf
}

func decodeU64(data []byte) uint64 {
	return binary.NativeEndian.Uint64(data)
}
