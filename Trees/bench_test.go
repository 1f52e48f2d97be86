package Trees

import (
	"slices"
	"testing"
	"unsafe"

	Rbst "github.com/g-m-twostay/rbst"
)

var (
	bAddN uint32 = 1000000
	bRmvN uint32 = bAddN
	bQryN uint32 = bAddN / 2
)

func BenchmarkTree_Put(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := NewOrdered[int, uint32](Rbst.Cheap{})
		for j := uint32(0); j < bAddN; j++ {
			tree.Put(rg.Int())
		}
	}
}
func create(b *testing.B) (*Tree[int, uint32], []int) {
	b.Helper()
	all := make([]int, bAddN)
	rg.Read(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(all))), uintptr(bAddN)*unsafe.Sizeof(0)))
	slices.Sort(all)
	all = slices.Compact(all)
	return From[int, uint32](all, Rbst.Cheap{}), all
}
func BenchmarkTree_Remove(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree, all := create(b)
		b.StartTimer()
		for _, v := range all[:min(uint32(len(all)), bRmvN)] {
			tree.Remove(v)
		}
	}
}
func BenchmarkTree_Find(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uint32(0); j < bQryN; j++ {
			tree.Find(all[rg.Intn(len(all))])
		}
	}
}
func BenchmarkTree_At(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uint32(0); j < bQryN; j++ {
			tree.At(uint(rg.Intn(len(all))))
		}
	}
}
func BenchmarkTree_RankOf(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uint32(0); j < bQryN; j++ {
			tree.RankOf(all[rg.Intn(len(all))])
		}
	}
}
