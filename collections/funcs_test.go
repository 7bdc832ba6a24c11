package collections_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/dvhns/golodash/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestMapFunc(t *testing.T) {
	got := collections.Map([]int{1, 2, 3}, func(n int) string {
		return strconv.Itoa(n * 2)
	})
	assertSlice(t, got, []string{"2", "4", "6"})
}

func TestFilterFunc(t *testing.T) {
	got := collections.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assertSlice(t, got, []int{2, 4})
}

func TestReduceFunc(t *testing.T) {
	// int → string
	s := collections.Reduce([]int{1, 2, 3}, func(acc string, n int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	if s != "1,2,3" {
		t.Fatalf("Reduce = %q; want \"1,2,3\"", s)
	}
}

func TestReduceRightFunc(t *testing.T) {
	s := collections.ReduceRight([]string{"a", "b", "c"}, func(acc, v string) string {
		return acc + v
	}, "")
	if s != "cba" {
		t.Fatalf("ReduceRight = %q; want \"cba\"", s)
	}
}

func TestEachRightFunc(t *testing.T) {
	var seen []int
	collections.EachRight([]int{1, 2, 3}, func(n int) { seen = append(seen, n) })
	assertSlice(t, seen, []int{3, 2, 1})
}

func TestFlatMapFunc(t *testing.T) {
	got := collections.FlatMap([]int{1, 2, 3}, func(n int) []string {
		return []string{strconv.Itoa(n), strconv.Itoa(n * 10)}
	})
	assertSlice(t, got, []string{"1", "10", "2", "20", "3", "30"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Query
// ─────────────────────────────────────────────────────────────────────────────

func TestIncludes(t *testing.T) {
	if !collections.Includes([]string{"a", "b"}, "b") {
		t.Fatal("Includes should be true")
	}
	if collections.Includes([]string{"a", "b"}, "c") {
		t.Fatal("Includes should be false")
	}
}

func TestCountBy(t *testing.T) {
	counts := collections.CountBy([]string{"one", "two", "three"}, func(s string) int {
		return len(s)
	})
	if len(counts) != 2 || counts[3] != 2 || counts[5] != 1 {
		t.Fatalf("CountBy = %v", counts)
	}
}

func TestPartitionFunc(t *testing.T) {
	pass, fail := collections.Partition([]int{1, 2, 3, 4, 5}, func(n int) bool { return n < 3 })
	assertSlice(t, pass, []int{1, 2})
	assertSlice(t, fail, []int{3, 4, 5})
}

// ─────────────────────────────────────────────────────────────────────────────
// Transform
// ─────────────────────────────────────────────────────────────────────────────

func TestGroupByFunc(t *testing.T) {
	groups := collections.GroupBy([]int{1, 2, 3, 4}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assertSlice(t, groups["even"], []int{2, 4})
	assertSlice(t, groups["odd"], []int{1, 3})
}

func TestKeyByFunc(t *testing.T) {
	type User struct {
		ID   int
		Name string
	}
	users := []User{{1, "Alice"}, {2, "Bob"}, {2, "Carol"}}
	byID := collections.KeyBy(users, func(u User) int { return u.ID })
	if len(byID) != 2 {
		t.Fatalf("KeyBy len = %d; want 2", len(byID))
	}
	if byID[2].Name != "Carol" {
		t.Fatalf("KeyBy duplicate key: got %q; want last-wins \"Carol\"", byID[2].Name)
	}
}

func TestInvokeFunc(t *testing.T) {
	got := collections.Invoke([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	assertSlice(t, got, []int{1, 2, 3})
}

func TestSortByFunc(t *testing.T) {
	type User struct {
		Name string
		Age  int
	}
	users := []User{{"john", 30}, {"jane", 25}, {"bob", 35}}
	sorted := collections.SortBy(users, func(u User) int { return u.Age })
	if sorted[0].Name != "jane" || sorted[2].Name != "bob" {
		t.Fatalf("SortBy = %v", sorted)
	}
	// stability: equal keys keep original order
	tied := collections.SortBy([]User{{"a", 1}, {"b", 1}, {"c", 0}}, func(u User) int { return u.Age })
	if tied[1].Name != "a" || tied[2].Name != "b" {
		t.Fatalf("SortBy not stable: %v", tied)
	}
}

func TestOrderByFunc(t *testing.T) {
	got := collections.OrderBy([]int{2, 3, 1}, func(n int) int { return n }, false)
	assertSlice(t, got, []int{3, 2, 1})
	got = collections.OrderBy([]int{2, 3, 1}, func(n int) int { return n }, true)
	assertSlice(t, got, []int{1, 2, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Operation & zip
// ─────────────────────────────────────────────────────────────────────────────

func TestSizeFunc(t *testing.T) {
	if collections.Size([]int{1, 2, 3}) != 3 {
		t.Fatal("Size failed")
	}
	if collections.Size([]int{}) != 0 {
		t.Fatal("Size of empty slice should be 0")
	}
}

func TestShuffleFunc(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got := collections.Shuffle(items)
	if len(got) != 5 {
		t.Fatal("Shuffle changed the length")
	}
	for _, n := range items {
		if !collections.Includes(got, n) {
			t.Fatalf("Shuffle lost element %d: %v", n, got)
		}
	}
	// input untouched
	assertSlice(t, items, []int{1, 2, 3, 4, 5})
}

func TestSampleSizeFunc(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got := collections.SampleSize(items, 3)
	if len(got) != 3 {
		t.Fatalf("SampleSize len = %d; want 3", len(got))
	}
	seen := map[int]bool{}
	for _, n := range got {
		if seen[n] {
			t.Fatalf("SampleSize returned duplicate %d: %v", n, got)
		}
		seen[n] = true
		if !collections.Includes(items, n) {
			t.Fatalf("SampleSize invented element %d", n)
		}
	}
}

func TestZip(t *testing.T) {
	pairs := collections.Zip([]string{"a", "b", "c"}, []int{1, 2})
	if len(pairs) != 2 {
		t.Fatalf("Zip len = %d; want 2 (shorter input)", len(pairs))
	}
	if pairs[0].First != "a" || pairs[0].Second != 1 {
		t.Fatalf("Zip[0] = %v", pairs[0])
	}
	if pairs[1].String() != "(b, 2)" {
		t.Fatalf("Pair.String = %q", pairs[1].String())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mixins
// ─────────────────────────────────────────────────────────────────────────────

func TestMixin(t *testing.T) {
	defer collections.FlushMixins()

	collections.RegisterMixin("sumInts", func(col any, _ ...any) any {
		c := col.(*collections.Collection[int])
		return c.Reduce(func(acc, n int) int { return acc + n }, 0)
	})

	if !collections.HasMixin("sumInts") {
		t.Fatal("HasMixin should return true")
	}

	result, err := ints(1, 2, 3, 4, 5).Mixin("sumInts")
	if err != nil {
		t.Fatal(err)
	}
	if result.(int) != 15 {
		t.Fatalf("Mixin result = %v; want 15", result)
	}
}

func TestMixinNotFound(t *testing.T) {
	_, err := ints(1).Mixin("nonexistent_mixin_xyz")
	if !errors.Is(err, collections.ErrMixinNotFound) {
		t.Fatal("expected ErrMixinNotFound")
	}
}
