package main

// ByteBuffer is a growable little-endian byte sink shared by the code and
// data sections. Capacity doubles on overflow, with a minimum growth large
// enough for the current append — the same policy as the C original's
// ensure_buffer_capacity.
type ByteBuffer struct {
	bytes []byte
}

func newByteBuffer(initialCapacity int) *ByteBuffer {
	if initialCapacity < 64 {
		initialCapacity = 64
	}
	return &ByteBuffer{bytes: make([]byte, 0, initialCapacity)}
}

func (b *ByteBuffer) grow(additional int) {
	need := len(b.bytes) + additional
	if need <= cap(b.bytes) {
		return
	}
	newCap := cap(b.bytes) * 2
	if newCap < need {
		newCap = need + 1024
	}
	grown := make([]byte, len(b.bytes), newCap)
	copy(grown, b.bytes)
	b.bytes = grown
}

// Len returns the number of bytes written so far.
func (b *ByteBuffer) Len() int { return len(b.bytes) }

// Bytes returns the accumulated bytes. The slice is owned by the buffer and
// must not be retained past the next mutating call.
func (b *ByteBuffer) Bytes() []byte { return b.bytes }

// WriteByte appends a single byte.
func (b *ByteBuffer) WriteByte(v byte) {
	b.grow(1)
	b.bytes = append(b.bytes, v)
}

// WriteBytes appends a raw byte slice verbatim.
func (b *ByteBuffer) WriteBytes(v []byte) {
	b.grow(len(v))
	b.bytes = append(b.bytes, v...)
}

// WriteZeros appends n zero bytes.
func (b *ByteBuffer) WriteZeros(n int) {
	b.grow(n)
	for i := 0; i < n; i++ {
		b.bytes = append(b.bytes, 0)
	}
}

// WriteUint16LE appends a 16-bit little-endian value.
func (b *ByteBuffer) WriteUint16LE(v uint16) {
	b.grow(2)
	b.bytes = append(b.bytes, byte(v), byte(v>>8))
}

// WriteUint32LE appends a 32-bit little-endian value.
func (b *ByteBuffer) WriteUint32LE(v uint32) {
	b.grow(4)
	b.bytes = append(b.bytes, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// WriteInt32LE appends a signed 32-bit little-endian displacement.
func (b *ByteBuffer) WriteInt32LE(v int32) {
	b.WriteUint32LE(uint32(v))
}

// WriteUint64LE appends a 64-bit little-endian value.
func (b *ByteBuffer) WriteUint64LE(v uint64) {
	b.grow(8)
	for i := 0; i < 8; i++ {
		b.bytes = append(b.bytes, byte(v>>(8*uint(i))))
	}
}
