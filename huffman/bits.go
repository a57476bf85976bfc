package huffman

import (
	"fmt"
	"io"
)

// BitPacker is an append-only bit sequence. Bits fill each byte from the
// most significant end.
type BitPacker struct {
	buf   []byte
	nbits int
}

// NewBitPacker returns a packer with room for sizeHint bits.
func NewBitPacker(sizeHint int) *BitPacker {
	return &BitPacker{buf: make([]byte, 0, (sizeHint+7)/8)}
}

// AppendBit appends a single bit.
func (p *BitPacker) AppendBit(bit bool) {
	off := p.nbits % 8
	if off == 0 {
		p.buf = append(p.buf, 0)
	}
	if bit {
		p.buf[len(p.buf)-1] |= 0x80 >> off
	}
	p.nbits++
}

// AppendBits appends every bit of c in order.
func (p *BitPacker) AppendBits(c Codeword) error {
	for i := 0; i < len(c); i++ {
		switch c[i] {
		case '0':
			p.AppendBit(false)
		case '1':
			p.AppendBit(true)
		default:
			return fmt.Errorf("%w: %q", ErrInvalidCodeword, c)
		}
	}
	return nil
}

// Len returns the number of bits appended so far.
func (p *BitPacker) Len() int {
	return p.nbits
}

// Bytes returns the packed bits and the number of zero bits used to pad the
// final byte, always in [0,7]. The packer stays usable afterwards.
func (p *BitPacker) Bytes() ([]byte, int) {
	out := make([]byte, len(p.buf))
	copy(out, p.buf)
	return out, (8 - p.nbits%8) % 8
}

// BitUnpacker reads bits from a byte slice, most significant bit first.
type BitUnpacker struct {
	data []byte
	pos  int
}

// NewBitUnpacker returns an unpacker positioned at the first bit of data.
func NewBitUnpacker(data []byte) *BitUnpacker {
	return &BitUnpacker{data: data}
}

// ReadBit returns the next bit, or io.EOF once every bit has been read.
func (u *BitUnpacker) ReadBit() (bool, error) {
	if u.Exhausted() {
		return false, io.EOF
	}
	bit := u.data[u.pos/8]>>(7-uint(u.pos%8))&1 == 1
	u.pos++
	return bit, nil
}

// Exhausted reports whether every bit has been read.
func (u *BitUnpacker) Exhausted() bool {
	return u.pos >= len(u.data)*8
}

// Remaining returns the number of unread bits.
func (u *BitUnpacker) Remaining() int {
	return len(u.data)*8 - u.pos
}
