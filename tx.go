package statdb

import (
	"go.etcd.io/bbolt"
)

// Every accessor runs inside exactly one transaction span opened by one of
// the helpers below. Two accessor calls in sequence are never atomic with
// respect to each other. Engine failures here are not application errors;
// they panic with a typed error, matching the fatal policy described in
// the package docs.

func (db *DB) view(f func(btx *bbolt.Tx)) {
	err := db.bdb.View(func(btx *bbolt.Tx) error {
		f(btx)
		return nil
	})
	if err != nil {
		panic(envErrf("unable to begin transaction", err))
	}
}

func (db *DB) update(f func(btx *bbolt.Tx)) {
	err := db.bdb.Update(func(btx *bbolt.Tx) error {
		f(btx)
		return nil
	})
	if err != nil {
		panic(envErrf("unable to commit transaction", err))
	}
}
