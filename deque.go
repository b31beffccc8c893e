package deque

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Deque is a double-ended queue of ints stored in a circular buffer. The
// logical element at position i lives at buf[(begin+i)%cap].
//
// The zero value is an empty Deque with no allocation, so both of these are
// fine:
//
//	var d deque.Deque
//	d := deque.MakeDeque()
//
// Pushing to a full Deque doubles its buffer. Popping from a Deque whose
// length is a quarter of its capacity halves the buffer first. Append grows to
// exactly the combined length.
//
// A Deque is not safe for concurrent use.
type Deque struct {
	buf           []int
	begin, length uint
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque returns an empty Deque. Nothing is allocated until the first push.
func MakeDeque() *Deque {
	return &Deque{}
}

// CopySliceToDeque allocates a buffer of exactly len(s) and copies every
// element of s into it, in order. Memory is not shared with s.
func CopySliceToDeque(s []int) *Deque {
	d := &Deque{}
	if len(s) == 0 {
		return d
	}
	d.buf = make([]int, len(s))
	copy(d.buf, s)
	d.length = uint(len(s))
	return d
}

// Clone returns a deep copy of d. The copy's capacity equals d's length, not
// d's capacity, and its elements start at slot 0.
func (d *Deque) Clone() *Deque {
	c := &Deque{}
	if d.length == 0 {
		return c
	}
	c.buf = make([]int, d.length)
	d.copyTo(c.buf)
	c.length = d.length
	return c
}

// Assign replaces the contents of d with a copy of src and returns d. The
// copy is built first and then swapped in, so d is left untouched if building
// it fails. Assigning a Deque to itself is safe.
func (d *Deque) Assign(src *Deque) *Deque {
	tmp := src.Clone()
	d.Swap(tmp)
	return d
}

// Swap exchanges the contents of d and other.
func (d *Deque) Swap(other *Deque) {
	*d, *other = *other, *d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque) Len() int {
	if d == nil {
		return 0
	}
	return int(d.length)
}

// Empty returns whether the Deque is empty.
func (d *Deque) Empty() bool { return d.length == 0 }

// Cap returns the number of slots in the underlying buffer.
func (d *Deque) Cap() int  { return len(d.buf) }
func (d *Deque) cap() uint { return uint(len(d.buf)) }

// Clear zeroes the live elements and empties the Deque. Capacity is retained.
func (d *Deque) Clear() {
	for i := range d.length {
		d.buf[d.slot(i)] = 0
	}
	d.begin, d.length = 0, 0
}

// PushBack puts v at the back of the Deque. If the Deque is full, the buffer
// is doubled first (or set to one slot if it was empty).
func (d *Deque) PushBack(v int) {
	if d.length == d.cap() {
		d.resize(grown(d.cap()))
	}
	d.buf[d.end()] = v
	d.length++
}

// PopBack removes the last element and returns it. On an empty Deque it
// returns 0 and does nothing; use TryPopBack to tell the two apart.
//
// If the length is a quarter of the capacity before the removal, the buffer is
// halved first.
func (d *Deque) PopBack() int {
	if d.length == 0 {
		return 0
	}
	d.shrinkIfSparse()
	d.length--
	return d.buf[d.end()]
}

// TryPopBack is PopBack, but returns ErrUnderflow on an empty Deque instead of
// a zero value.
func (d *Deque) TryPopBack() (int, error) {
	if d.length == 0 {
		return 0, fmt.Errorf("%w: pop back", ErrUnderflow)
	}
	return d.PopBack(), nil
}

// PushFront puts v at the front of the Deque. If the Deque is full, the buffer
// is doubled first (or set to one slot if it was empty).
func (d *Deque) PushFront(v int) {
	unallocated := d.cap() == 0
	if d.length == d.cap() {
		d.resize(grown(d.cap()))
	}
	if unallocated {
		d.buf[0] = v
		d.begin, d.length = 0, 1
		return
	}
	d.begin = d.prev(d.begin)
	d.buf[d.begin] = v
	d.length++
}

// PopFront removes the first element and returns it. On an empty Deque it
// returns 0; use TryPopFront to tell the two apart.
//
// The shrink check runs before the emptiness check: if the length is a quarter
// of the capacity the buffer is halved, even when there is nothing to pop.
func (d *Deque) PopFront() int {
	d.shrinkIfSparse()
	if d.length == 0 {
		return 0
	}
	v := d.buf[d.begin]
	d.begin = d.next(d.begin)
	d.length--
	return v
}

// TryPopFront is PopFront, but returns ErrUnderflow on an empty Deque instead
// of a zero value. The shrink check still runs.
func (d *Deque) TryPopFront() (int, error) {
	if d.length == 0 {
		d.shrinkIfSparse()
		return 0, fmt.Errorf("%w: pop front", ErrUnderflow)
	}
	return d.PopFront(), nil
}

// PeekFront returns the first element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque) PeekFront() (v int, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf[d.begin], true
}

// PeekBack returns the last element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque) PeekBack() (v int, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf[d.prev(d.end())], true
}

// Append copies every element of rhs, in order, to the back of d and returns
// d. If the combined length does not fit, the buffer grows to exactly the
// combined length. d.Append(d) doubles the contents.
func (d *Deque) Append(rhs *Deque) *Deque {
	if rhs.Empty() {
		return d
	}
	n := rhs.length
	if total := d.length + n; total > d.cap() {
		d.resize(total)
	}
	// rhs may be d, and n is fixed above, so reads only ever see the old
	// elements.
	end := d.end()
	for i := range n {
		d.buf[(end+i)%d.cap()] = rhs.buf[rhs.slot(i)]
	}
	d.length += n
	return d
}

// Concat returns a new Deque holding the elements of d followed by those of
// rhs. Neither operand is modified.
func (d *Deque) Concat(rhs *Deque) *Deque {
	return d.Clone().Append(rhs)
}

// Reverse reverses the Deque in place and returns it. It never reallocates.
func (d *Deque) Reverse() *Deque {
	if d.length < 2 {
		return d
	}
	for i, j := uint(0), d.length-1; i < j; i, j = i+1, j-1 {
		a, b := d.slot(i), d.slot(j)
		d.buf[a], d.buf[b] = d.buf[b], d.buf[a]
	}
	return d
}

// Reversed returns a reversed copy of d, leaving d untouched.
func (d *Deque) Reversed() *Deque {
	return d.Clone().Reverse()
}

/*****************************************************************************
 * INDEX API
 *****************************************************************************/

// At returns the element at logical position pos. It returns an error
// wrapping ErrOutOfRange if pos is not in [0, Len()).
func (d *Deque) At(pos int) (int, error) {
	if err := d.checkBounds(pos); err != nil {
		return 0, err
	}
	return d.buf[d.slot(uint(pos))], nil
}

// Set writes v at logical position pos. It returns an error wrapping
// ErrOutOfRange if pos is not in [0, Len()), leaving the Deque unchanged.
func (d *Deque) Set(pos int, v int) error {
	if err := d.checkBounds(pos); err != nil {
		return err
	}
	d.buf[d.slot(uint(pos))] = v
	return nil
}

// MakeSliceCopy allocates a slice holding every element in order.
func (d *Deque) MakeSliceCopy() []int {
	s := make([]int, d.length)
	d.copyTo(s)
	return s
}

/*****************************************************************************
 * FORMATTING
 *****************************************************************************/

// String lists the elements in order, each followed by a single space. An
// empty Deque formats as "".
func (d *Deque) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the same listing as String to w.
func (d *Deque) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var scratch [24]byte
	for i := range d.length {
		b := strconv.AppendInt(scratch[:0], int64(d.buf[d.slot(i)]), 10)
		b = append(b, ' ')
		n, err := w.Write(b)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrOutOfRange is returned by indexed access outside [0, Len()).
var ErrOutOfRange = errors.New("index out of range")

// ErrUnderflow is returned by TryPopFront and TryPopBack on an empty Deque.
var ErrUnderflow = errors.New("pop from empty deque")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// resize reallocates the buffer to newCap slots and moves the live elements
// to slots 0..length-1. A newCap of 0 releases the buffer.
func (d *Deque) resize(newCap uint) {
	if newCap == 0 {
		*d = Deque{}
		return
	}
	newBuf := make([]int, newCap)
	d.copyTo(newBuf)
	d.buf = newBuf
	d.begin = 0
}

// shrinkIfSparse halves the buffer when the length is a quarter of the
// capacity, rounding down.
func (d *Deque) shrinkIfSparse() {
	if d.length == d.cap()/4 {
		d.resize(d.cap() / 2)
	}
}

func grown(c uint) uint {
	if c == 0 {
		return 1
	}
	return c * 2
}

// copyTo copies the logical elements into dst, which must hold d.length.
func (d *Deque) copyTo(dst []int) {
	if d.length == 0 {
		return
	}
	if d.begin+d.length <= d.cap() {
		copy(dst, d.buf[d.begin:d.begin+d.length])
		return
	}
	n := copy(dst, d.buf[d.begin:])
	copy(dst[n:d.length], d.buf[:d.length-uint(n)])
}

func (d *Deque) slot(i uint) uint { return (d.begin + i) % d.cap() }
func (d *Deque) end() uint        { return (d.begin + d.length) % d.cap() }
func (d *Deque) next(i uint) uint { return (i + 1) % d.cap() }
func (d *Deque) prev(i uint) uint { return (i + d.cap() - 1) % d.cap() }

func (d *Deque) checkBounds(pos int) error {
	if pos < 0 || pos >= d.Len() {
		return fmt.Errorf("%w: position %d with length %d", ErrOutOfRange, pos, d.Len())
	}
	return nil
}
