package chance

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Cycles(t *testing.T) {
	s := NewSequence(0, 1, 5)
	assert.Equal(t, 0, s.Intn(3))
	assert.Equal(t, 1, s.Intn(3))
	assert.Equal(t, 2, s.Intn(3)) // 5 % 3
	assert.Equal(t, 0, s.Intn(3)) // wraps
	assert.Equal(t, 0, NewSequence().Intn(7))
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, "b", Pick(NewSequence(1), items))
	assert.Equal(t, "", Pick(NewSequence(1), []string(nil)))
}

func TestSample(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	tests := []struct {
		name string
		src  Source
		k    int
		want []string
	}{
		{"IdentityWithZeros", NewSequence(0), 2, []string{"a", "b"}},
		{"SwapsFromTail", NewSequence(3, 0), 2, []string{"d", "b"}},
		{"ClampsK", NewSequence(0), 9, []string{"a", "b", "c", "d"}},
		{"ZeroK", NewSequence(0), 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sample(tt.src, items, tt.k))
		})
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, items, "input must not be mutated")
}

func TestSample_Distinct(t *testing.T) {
	src := NewSeeded(42)
	items := []int{1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < 50; i++ {
		got := Sample(src, items, 4)
		seen := map[int]bool{}
		for _, v := range got {
			assert.False(t, seen[v])
			seen[v] = true
		}
		assert.Len(t, got, 4)
	}
}

func TestSeeded_Reproducible(t *testing.T) {
	a, b := NewSeeded(7), NewSeeded(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestDefault_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := Or(nil).Intn(10)
				assert.True(t, v >= 0 && v < 10)
			}
		}()
	}
	wg.Wait()
}
