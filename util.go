package statdb

import (
	"go.etcd.io/bbolt"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ensure(err error) {
	if err != nil {
		panic(err)
	}
}

func nonNil[T any](v *T) *T {
	if v == nil {
		panic("nil")
	}
	return v
}

func bucketOf(btx *bbolt.Tx, tbl *table) *bbolt.Bucket {
	return nonNil(btx.Bucket(tbl.buck.Raw()))
}
