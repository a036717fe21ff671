package events

import (
	"sync"
	"testing"
)

func TestTypeID_StablePerType(t *testing.T) {
	type alpha struct{}

	first := TypeID[alpha]()
	second := TypeID[alpha]()
	if first != second {
		t.Errorf("same type got two ids: %d, %d", first, second)
	}
}

func TestTypeID_DistinctTypesNeverCollide(t *testing.T) {
	type alpha struct{ N int }
	type beta struct{ N int }

	if TypeID[alpha]() == TypeID[beta]() {
		t.Error("distinct types share an id")
	}
}

func TestTypeID_DenseSequentialAllocation(t *testing.T) {
	type alpha struct{}
	type beta struct{}
	type gamma struct{}

	a := TypeID[alpha]()
	b := TypeID[beta]()
	c := TypeID[gamma]()

	if b != a+1 || c != b+1 {
		t.Errorf("ids not sequential: %d, %d, %d", a, b, c)
	}
}

func TestTypeID_ConcurrentFirstUse(t *testing.T) {
	type alpha struct{}

	const goroutines = 32
	ids := make([]int, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			ids[i] = TypeID[alpha]()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("racing first use assigned different ids: %v", ids)
		}
	}
}
