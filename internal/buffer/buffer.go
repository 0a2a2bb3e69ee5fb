package buffer

// Buffer accumulates fed bytes until they are consumed by the decoder. It
// never grows past maxSize: Append reports whether the data still fits.
type Buffer struct {
	memory  []byte
	begin   int
	maxSize int
}

func New(maxSize int) Buffer {
	return Buffer{maxSize: maxSize}
}

// Append writes data, checking whether the new amount of pending bytes
// doesn't exceed the limit, otherwise discarding the data and returning false.
func (b *Buffer) Append(data []byte) (ok bool) {
	if b.Len()+len(data) > b.maxSize {
		return false
	}

	if b.begin > 0 {
		// compact first, so consumed bytes don't count against the limit
		b.memory = append(b.memory[:0], b.memory[b.begin:]...)
		b.begin = 0
	}

	b.memory = append(b.memory, data...)
	return true
}

// Preview returns pending bytes without consuming them.
func (b *Buffer) Preview() []byte {
	return b.memory[b.begin:]
}

// Discard consumes the first n pending bytes.
func (b *Buffer) Discard(n int) {
	if n > b.Len() {
		n = b.Len()
	}

	b.begin += n
}

// Len returns the number of pending bytes.
func (b *Buffer) Len() int {
	return len(b.memory) - b.begin
}

// Clear drops everything, including pending bytes.
func (b *Buffer) Clear() {
	b.begin = 0
	b.memory = b.memory[:0]
}
