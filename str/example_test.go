package str_test

import (
	"fmt"

	"github.com/hasbyte1/go-utils/str"
)

func ExampleMask() {
	fmt.Println(str.Mask("taylor@example.com", '*', 3))
	fmt.Println(str.Mask("taylor@example.com", '*', -15, 3))
	// Output:
	// tay***************
	// tay***@example.com
}

func ExampleNamedTemplate() {
	out := str.NamedTemplate("{greet}! My name is {name}.", map[string]any{
		"greet": "Hello",
		"name":  "Anthony",
	})
	fmt.Println(out)
	// Output: Hello! My name is Anthony.
}

func ExampleBetween() {
	fmt.Println(str.Between("This is my name", "This", "name"))
	// Output: is my
}
