package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagDrawsEveryKindOncePerBag(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(7)), 5)

	for bag := 0; bag < 10; bag++ {
		seen := make(map[Kind]int)
		for i := 0; i < len(Kinds); i++ {
			seen[r.Next()]++
		}
		for _, k := range Kinds {
			assert.Equal(t, 1, seen[k], "bag %d kind %s", bag, k)
		}
	}
}

func TestQueueStaysAtDepth(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(1)), 5)
	assert.Equal(t, 5, r.Len())
	for i := 0; i < 50; i++ {
		r.Next()
		assert.Equal(t, 5, r.Len())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(3)), 5)

	peek := r.Peek(5)
	assert.Len(t, peek, 5)
	assert.Len(t, r.Peek(99), 5)
	assert.Empty(t, r.Peek(-1))

	for _, want := range peek {
		assert.Equal(t, want, r.Next())
	}
}

func TestRandomizerSeeded(t *testing.T) {
	a := NewRandomizer(rand.New(rand.NewSource(42)), 5)
	b := NewRandomizer(rand.New(rand.NewSource(42)), 5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}
