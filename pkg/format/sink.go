// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package format

// 🕳️ Sink is an append-only output buffer that can rewind back to a
// previously recorded position. The engine uses rewinds to drop trailing
// whitespace and trailing empty lines it has already written.
type Sink interface {
	// Write writes a single byte and advances the position by one.
	Write(c byte)

	// WriteBytes writes multiple bytes and advances the position by the
	// number of bytes written.
	WriteBytes(p []byte)

	// Rewind discards everything after a previous position. The position
	// must not exceed the current one.
	Rewind(pos int)

	// Position returns the number of bytes currently in the sink.
	Position() int
}

// 📼 Buffer is a Sink that keeps the written bytes in memory.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

func (b *Buffer) Write(c byte) {
	b.buf = append(b.buf, c)
}

func (b *Buffer) WriteBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

func (b *Buffer) Rewind(pos int) {
	b.buf = b.buf[:pos]
}

func (b *Buffer) Position() int {
	return len(b.buf)
}

// Bytes returns the accumulated output.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// 🧮 Counter is a Sink that keeps only the current and the maximum position
// ever reached. It is used to size the real output buffer and to answer
// "would anything change" without materializing any output.
type Counter struct {
	pos int
	max int
}

// NewCounter creates a counting sink.
func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Write(_ byte) {
	c.pos++
	if c.pos > c.max {
		c.max = c.pos
	}
}

func (c *Counter) WriteBytes(p []byte) {
	c.pos += len(p)
	if c.pos > c.max {
		c.max = c.pos
	}
}

func (c *Counter) Rewind(pos int) {
	c.pos = pos
}

func (c *Counter) Position() int {
	return c.pos
}

// MaxPosition returns the high-water mark of the sink, i.e. the capacity a
// real buffer needs to replay the same writes without reallocating.
func (c *Counter) MaxPosition() int {
	return c.max
}
