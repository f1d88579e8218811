package bitwise

import "math/bits"

func Set(n uint64, k int) uint64 {
	return (n | (1 << k)) // OR
}

func IsSet(n uint64, k int) bool {
	return n&(1<<k) > 0
}

const wordSize = 64

// Bitmap is a fixed size set of bits backed by 64 bit words.
type Bitmap struct {
	size  int
	words []uint64
}

func NewBitmap(size int) *Bitmap {
	return &Bitmap{
		size:  size,
		words: make([]uint64, (size+wordSize-1)/wordSize),
	}
}

func (b *Bitmap) Len() int {
	return b.size
}

func (b *Bitmap) Set(k int) {
	b.check(k)
	b.words[k/wordSize] = Set(b.words[k/wordSize], k%wordSize)
}

func (b *Bitmap) IsSet(k int) bool {
	if k < 0 || k >= b.size {
		return false
	}
	return IsSet(b.words[k/wordSize], k%wordSize)
}

// Count returns number of set bits
func (b *Bitmap) Count() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}

func (b *Bitmap) check(k int) {
	if k < 0 || k >= b.size {
		panic("bitwise: bit index out of range")
	}
}
