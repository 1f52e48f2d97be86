package comparisons

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	Rbst "github.com/g-m-twostay/rbst"
	"github.com/g-m-twostay/rbst/Sets/RbstSet"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Case1: insert elementNum random keys, then look each one up.
// Case2: insert, then walk the whole set in order; the hash maps sit this one
// out since they have no order to walk.
const elementNum = 1 << 16

var keys = func() []int {
	rg := rand.New(rand.NewSource(2))
	ks := make([]int, elementNum)
	for i := range ks {
		ks[i] = rg.Int()
	}
	return ks
}()

func BenchmarkRbstSet_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := RbstSet.NewOrdered[int, uint32](Rbst.Cheap{})
		for _, k := range keys {
			s.Put(k)
		}
		for _, k := range keys {
			if !s.Has(k) {
				b.Error("key doesn't exist", k)
			}
		}
	}
}

func BenchmarkTreeSet_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := treeset.NewWithIntComparator()
		for _, k := range keys {
			s.Add(k)
		}
		for _, k := range keys {
			if !s.Contains(k) {
				b.Error("key doesn't exist", k)
			}
		}
	}
}

func BenchmarkBTree_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := btree.NewOrderedG[int](32)
		for _, k := range keys {
			s.ReplaceOrInsert(k)
		}
		for _, k := range keys {
			if !s.Has(k) {
				b.Error("key doesn't exist", k)
			}
		}
	}
}

func BenchmarkLLRB_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := llrb.New()
		for _, k := range keys {
			s.ReplaceOrInsert(llrb.Int(k))
		}
		for _, k := range keys {
			if !s.Has(llrb.Int(k)) {
				b.Error("key doesn't exist", k)
			}
		}
	}
}

func BenchmarkHaxMap_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := haxmap.New[int, struct{}]()
		for _, k := range keys {
			s.Set(k, struct{}{})
		}
		for _, k := range keys {
			if _, a := s.Get(k); !a {
				b.Error("key doesn't exist", k)
			}
		}
	}
}

func BenchmarkHashMap_Case1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := hashmap.New[int, struct{}]()
		for _, k := range keys {
			s.Insert(k, struct{}{})
		}
		for _, k := range keys {
			if _, a := s.Get(k); !a {
				b.Error("key doesn't exist", k)
			}
		}
	}
}

func BenchmarkRbstSet_Case2(b *testing.B) {
	s := RbstSet.NewOrdered[int, uint32](Rbst.Cheap{})
	for _, k := range keys {
		s.Put(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prev := math.MinInt
		s.Range(func(v int) bool {
			if v <= prev {
				b.Error("out of order", v)
			}
			prev = v
			return true
		})
	}
}

func BenchmarkTreeSet_Case2(b *testing.B) {
	s := treeset.NewWithIntComparator()
	for _, k := range keys {
		s.Add(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prev := math.MinInt
		it := s.Iterator()
		for it.Next() {
			if v := it.Value().(int); v <= prev {
				b.Error("out of order", v)
			} else {
				prev = v
			}
		}
	}
}

func BenchmarkBTree_Case2(b *testing.B) {
	s := btree.NewOrderedG[int](32)
	for _, k := range keys {
		s.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prev := math.MinInt
		s.Ascend(func(v int) bool {
			if v <= prev {
				b.Error("out of order", v)
			}
			prev = v
			return true
		})
	}
}

func BenchmarkLLRB_Case2(b *testing.B) {
	s := llrb.New()
	for _, k := range keys {
		s.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prev := math.MinInt
		s.AscendGreaterOrEqual(llrb.Int(math.MinInt), func(i llrb.Item) bool {
			if v := int(i.(llrb.Int)); v <= prev {
				b.Error("out of order", v)
			} else {
				prev = v
			}
			return true
		})
	}
}
