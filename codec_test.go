package statdb

import (
	"bytes"
	"testing"
)

func TestStrKeyHasNoTerminator(t *testing.T) {
	eq(t, len(encodeStrKey("abc")), 3)
	eq(t, len(encodeStrKey("")), 0)
}

func TestStrValTerminator(t *testing.T) {
	enc := encodeStrVal("abc")
	deepEqual(t, enc, []byte{'a', 'b', 'c', 0})
	eq(t, decodeStrVal(enc), "abc")

	// a value without a terminator still reads in full
	eq(t, decodeStrVal([]byte("abc")), "abc")
	eq(t, decodeStrVal(encodeStrVal("")), "")
}

func TestIntWidths(t *testing.T) {
	eq(t, len(encodeI32(1)), 4)
	eq(t, len(encodeU64(1)), 8)

	for _, v := range []int32{0, 1, -1, 1<<31 - 1, -1 << 31} {
		eq(t, decodeI32(encodeI32(v)), v)
	}
	for _, v := range []uint64{0, 1, 1<<64 - 1} {
		eq(t, decodeU64(encodeU64(v)), v)
	}

	if !bytes.Equal(encodeIntKey(42), encodeI32(42)) {
		t.Error("** int keys must use the int32 value layout")
	}
}
