package parallel_test

import (
	"fmt"

	"github.com/dvhns/golodash/parallel"
)

func ExampleMap() {
	squares := parallel.Map([]int{1, 2, 3, 4}, func(n int) int { return n * n })
	fmt.Println(squares)
	// Output: [1 4 9 16]
}

func ExampleReduce() {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sum := parallel.Reduce(items,
		func(acc, n int) int { return acc + n },
		func(a, b int) int { return a + b },
		0)
	fmt.Println(sum)
	// Output: 55
}
