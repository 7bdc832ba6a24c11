package collections_test

import (
	"fmt"
	"strconv"

	"github.com/dvhns/golodash/collections"
)

func ExampleNew() {
	c := collections.New(1, 2, 3, 4, 5)
	fmt.Println(c.Size(), c.Reduce(func(acc, n int) int { return acc + n }, 0))
	// Output: 5 15
}

func ExampleCollection_Filter() {
	result := collections.New(1, 2, 3, 4, 5, 6).
		Filter(func(n int) bool { return n%2 == 0 }).
		All()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleCollection_SortBy() {
	result := collections.New(5, 3, 1, 4, 2).
		SortBy(func(n int) float64 { return float64(n) }).
		All()
	fmt.Println(result)
	// Output: [1 2 3 4 5]
}

func ExampleCollection_Partition() {
	evens, odds := collections.New(1, 2, 3, 4, 5).
		Partition(func(n int) bool { return n%2 == 0 })
	fmt.Println(evens.All(), odds.All())
	// Output: [2 4] [1 3 5]
}

func ExampleMap() {
	result := collections.Map([]int{1, 2, 3}, func(n int) string {
		return strconv.Itoa(n * n)
	})
	fmt.Println(result)
	// Output: [1 4 9]
}

func ExampleGroupBy() {
	groups := collections.GroupBy([]float64{6.1, 4.2, 6.3}, func(f float64) int {
		return int(f)
	})
	fmt.Println(groups[4], groups[6])
	// Output: [4.2] [6.1 6.3]
}

func ExampleCountBy() {
	counts := collections.CountBy([]string{"one", "two", "three"}, func(s string) int {
		return len(s)
	})
	fmt.Println(counts[3], counts[5])
	// Output: 2 1
}

func ExampleZip() {
	for _, p := range collections.Zip([]string{"a", "b", "c"}, []int{1, 2, 3}) {
		fmt.Printf("%s=%d\n", p.First, p.Second)
	}
	// Output:
	// a=1
	// b=2
	// c=3
}
