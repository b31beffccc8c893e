package deque_test

import (
	"errors"
	"fmt"

	"github.com/lucasgdosr/intdeque"
)

func Example() {
	d := deque.MakeDeque()
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	fmt.Printf("%q len=%d cap=%d\n", d.String(), d.Len(), d.Cap())

	fmt.Println(d.PopFront(), d.PopBack())
	// Output:
	// "1 2 3 " len=3 cap=4
	// 1 3
}

func ExampleDeque_Concat() {
	a := deque.CopySliceToDeque([]int{1, 2, 3})
	b := deque.CopySliceToDeque([]int{4, 5})
	fmt.Printf("%q\n", a.Concat(b).String())
	fmt.Printf("%q\n", a.String())
	// Output:
	// "1 2 3 4 5 "
	// "1 2 3 "
}

func ExampleDeque_Reversed() {
	d := deque.CopySliceToDeque([]int{1, 2, 3})
	fmt.Printf("%q %q\n", d.Reversed().String(), d.String())
	// Output: "3 2 1 " "1 2 3 "
}

func ExampleDeque_At() {
	d := deque.CopySliceToDeque([]int{10, 20})
	v, _ := d.At(1)
	fmt.Println(v)
	_, err := d.At(2)
	fmt.Println(errors.Is(err, deque.ErrOutOfRange), err)
	// Output:
	// 20
	// true index out of range: position 2 with length 2
}
