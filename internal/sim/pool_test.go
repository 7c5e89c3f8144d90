package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_AllocateUntilExhausted(t *testing.T) {
	p := NewPool[Bullet](4)
	for want := 0; want < 4; want++ {
		i, err := p.Allocate()
		require.NoError(t, err)
		assert.Equal(t, want, i)
	}
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 0, p.Free())

	i, err := p.Allocate()
	assert.ErrorIs(t, err, ErrPoolExhausted)
	assert.Equal(t, -1, i)
	assert.Equal(t, 4, p.Len())
}

func TestPool_FirstFreeReuse(t *testing.T) {
	p := NewPool[Bullet](5)
	for i := 0; i < 5; i++ {
		_, err := p.Allocate()
		require.NoError(t, err)
	}
	p.Release(3)
	p.Release(1)
	p.Release(1) // double release is harmless

	i, err := p.Allocate()
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	i, err = p.Allocate()
	require.NoError(t, err)
	assert.Equal(t, 3, i)
}

func TestPool_AllocateZeroesSlot(t *testing.T) {
	p := NewPool[Enemy](1)
	i, _ := p.Allocate()
	p.Get(i).Health = 9
	p.Release(i)

	i, _ = p.Allocate()
	assert.Equal(t, 0, p.Get(i).Health)
}

func TestPool_EachAllowsRelease(t *testing.T) {
	p := NewPool[Particle](6)
	for i := 0; i < 6; i++ {
		j, _ := p.Allocate()
		p.Get(j).Life = j
	}
	var seen []int
	p.Each(func(i int, v *Particle) {
		seen = append(seen, i)
		if v.Life%2 == 0 {
			p.Release(i)
		}
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, seen)
	assert.Equal(t, 3, p.Len())
	assert.False(t, p.Active(0))
	assert.True(t, p.Active(1))
}

func TestPool_ReleaseOutOfRange(t *testing.T) {
	p := NewPool[Bullet](2)
	p.Release(-1)
	p.Release(2)
	assert.Equal(t, 0, p.Len())
}

func TestPool_Clear(t *testing.T) {
	p := NewPool[Bullet](3)
	p.Allocate()
	p.Allocate()
	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 3, p.Free())
	assert.Equal(t, NewPool[Bullet](3), p)
}
