// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"errors"
	"io"

	"github.com/valyala/bytebufferpool"
)

// ErrInputTooLarge is returned by [ReadAll] when the reader yields more than the allowed size.
var ErrInputTooLarge = errors.New("gc: input exceeds size limit")

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	io.WriterTo
	io.ReaderFrom
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool. Buffers not obtained from a
// bytebufferpool are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the buffer pool shared by the CLI input path and the JSON logger.
//
// Example usage for reading a PEM document before decoding it:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	if _, err := buf.ReadFrom(file); err != nil {
//		return fmt.Errorf("error reading input: %w", err)
//	}
//
//	n, err := pem.DecodedLen(buf.Bytes())
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// ReadAll reads r into a pooled buffer and passes its contents to fn. The
// slice given to fn is only valid until fn returns. A limit above zero caps
// the number of bytes read; exceeding it yields [ErrInputTooLarge].
func ReadAll(r io.Reader, limit int64, fn func(data []byte) error) error {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	src := r
	if limit > 0 {
		// One extra byte tells an input of exactly limit bytes from a longer one.
		src = io.LimitReader(r, limit+1)
	}
	n, err := buf.ReadFrom(src)
	if err != nil {
		return err
	}
	if limit > 0 && n > limit {
		return ErrInputTooLarge
	}

	return fn(buf.Bytes())
}
