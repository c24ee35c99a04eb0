package statdb

import (
	"fmt"
	"strings"
)

// EnvError reports a failure of the environment itself: opening, starting or
// committing a transaction, syncing. These are treated as unrecoverable and
// are thrown via panic everywhere except Open.
type EnvError struct {
	Op  string
	Err error
}

func envErrf(op string, err error) error {
	return &EnvError{op, err}
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("statdb: %s: %v", e.Op, e.Err)
}

// TableError reports an engine failure scoped to one table and, when known,
// one key.
type TableError struct {
	Table string
	Key   []byte
	Msg   string
	Err   error
}

func tableErrf(tbl *table, key []byte, err error, format string, args ...any) error {
	return &TableError{tbl.Name(), key, fmt.Sprintf(format, args...), err}
}

func (e *TableError) Unwrap() error {
	return e.Err
}

func (e *TableError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Table)
	if e.Key != nil {
		buf.WriteByte('/')
		buf.Write(e.Key)
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}
