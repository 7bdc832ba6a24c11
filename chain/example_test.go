package chain_test

import (
	"context"
	"fmt"

	"github.com/dvhns/golodash/chain"
)

func ExampleNew() {
	result := chain.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * 3 }).
		Take(3).
		Value()
	fmt.Println(result)
	// Output: [6 12 18]
}

func ExampleNewAsync() {
	result, err := chain.NewAsync([]int{1, 2, 3, 4, 5}).
		FilterAsync(func(_ context.Context, n int) (bool, error) {
			return n%2 == 0, nil
		}).
		MapAsync(func(_ context.Context, n int) (int, error) {
			return n * 3, nil
		}).
		Await(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result)
	// Output: [6 12]
}

func ExampleChain_Collection() {
	col := chain.New([]int{3, 1, 2}).
		Reverse().
		Collection()
	fmt.Println(col.All())
	// Output: [2 1 3]
}
