// Package bufferpool pools the buffers outgoing request bodies are encoded into.
package bufferpool

import (
	"bytes"
	"sync"
)

const (
	initialSize = 1024

	// maxSize caps the buffers kept in the pool, larger ones are left to the GC.
	maxSize = 64 * 1024
)

var pool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialSize))
	},
}

// Get returns an empty buffer. Callers must not use it after Put.
func Get() *bytes.Buffer {
	buf := pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxSize {
		return
	}
	pool.Put(buf)
}
