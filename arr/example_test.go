package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-array-collection/arr"
)

func ExampleSplice() {
	out, removed := arr.Splice([]string{"red", "green", "blue", "yellow"}, -1, 1, "black", "maroon")
	fmt.Println(out)
	fmt.Println(removed)
	// Output:
	// [red green blue black maroon]
	// [yellow]
}

func ExampleSlice() {
	fmt.Println(arr.Slice([]int{1, 2, 3, 4, 5}, 1, -1))
	// Output: [2 3 4]
}

func ExampleIndexOf() {
	fmt.Println(arr.IndexOf([]string{"a", "b", "a"}, "a", 1))
	// Output: 2
}

func ExampleStrictEqual() {
	fmt.Println(arr.StrictEqual(1, 1), arr.StrictEqual("1", 1))
	// Output: true false
}
