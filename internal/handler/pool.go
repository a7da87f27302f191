package handler

import (
	"bytes"
	"sync"
)

const responseBufferSize = 1024

// bufferPool recycles JSON encoding buffers between responses
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers so one large response does not pin memory
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*responseBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
