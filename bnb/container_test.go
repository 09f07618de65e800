package bnb_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnbsearch/bnb"
)

var none bnb.Incumbent[int]

func best(score int) bnb.Incumbent[int] { return bnb.Incumbent[int]{Score: score, Found: true} }

// drain pops everything c is willing to return under b.
func drain(c bnb.Container[*tnode, int], b bnb.Incumbent[int]) []string {
	var out []string
	for {
		n, ok := c.Pop(b)
		if !ok {
			return out
		}
		out = append(out, n.name)
	}
}

func leaves(layout string) []*tnode {
	var out []*tnode
	for _, f := range strings.Fields(layout) {
		name, v, _ := strings.Cut(f, ":")
		n := 0
		for _, c := range v {
			n = n*10 + int(c-'0')
		}
		out = append(out, leaf(name, n))
	}

	return out
}

func TestIncumbent_Dominates(t *testing.T) {
	assert.False(t, none.Dominates(-100))
	assert.True(t, best(5).Dominates(5))
	assert.True(t, best(5).Dominates(4))
	assert.False(t, best(5).Dominates(6))
}

func TestStack_LIFO(t *testing.T) {
	s, err := bnb.NewStack[*tnode, int](leaves("a:1 b:2"))
	require.NoError(t, err)
	s.Push(leaf("c", 3), none)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"c", "b", "a"}, drain(s, none))
	assert.Zero(t, s.Len())
}

func TestQueue_FIFO(t *testing.T) {
	q, err := bnb.NewQueue[*tnode, int](leaves("a:1 b:2"))
	require.NoError(t, err)
	q.Push(leaf("c", 3), none)
	assert.Equal(t, []string{"a", "b", "c"}, drain(q, none))

	// usable again once emptied
	q.Push(leaf("d", 1), none)
	assert.Equal(t, []string{"d"}, drain(q, none))
}

func TestBestFirst_OrderAndTies(t *testing.T) {
	q, err := bnb.NewBestFirst[*tnode, int](leaves("a:3 b:7 c:5"))
	require.NoError(t, err)
	q.Push(leaf("d", 5), none) // ties with c, newer
	assert.Equal(t, []string{"b", "d", "c", "a"}, drain(q, none))
}

func TestBestFirst_EarlyStop(t *testing.T) {
	log := &pruneLog{}
	q, err := bnb.NewBestFirst[*tnode, int](leaves("a:3 b:7 c:5"), bnb.WithPruneHook(log.hook))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, drain(q, best(6)))
	assert.Zero(t, q.Len())
	assert.Equal(t, []bnb.PruneKind{bnb.EarlyStop}, log.kinds)
	assert.Equal(t, []int{2}, log.counts)
}

func TestCustom_NoEarlyStopWithoutSupersede(t *testing.T) {
	// ascending names: a, then b, then c; the bound order is not refined
	byName := func(a, b *tnode) int { return strings.Compare(b.name, a.name) }
	log := &pruneLog{}
	q, err := bnb.NewCustom[*tnode, int](leaves("c:9 a:1 b:8"), byName, false, bnb.WithPruneHook(log.hook))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, drain(q, best(5)))
	assert.Equal(t, []bnb.PruneKind{bnb.PrunedOnPop}, log.kinds)
}

func TestCustom_Supersede(t *testing.T) {
	byValue := func(a, b *tnode) int { return a.value - b.value }
	log := &pruneLog{}
	q, err := bnb.NewCustom[*tnode, int](leaves("c:9 a:1 b:8"), byValue, true, bnb.WithPruneHook(log.hook))
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, drain(q, best(8)))
	assert.Equal(t, []int{2}, log.counts)
	assert.Equal(t, []bnb.PruneKind{bnb.EarlyStop}, log.kinds)
}

func TestCustom_NilComparator(t *testing.T) {
	_, err := bnb.NewCustom[*tnode, int](nil, nil, false)
	assert.ErrorIs(t, err, bnb.ErrNilComparator)
}

func TestPruning_Policies(t *testing.T) {
	cases := []struct {
		policy  bnb.Pruning
		popped  []string
		refused int
	}{
		{bnb.PruneNone, []string{"lo", "hi", "root"}, 0},
		{bnb.PruneOnPush, []string{"hi", "root"}, 1},
		{bnb.PruneOnPop, []string{"hi"}, 0},
		{bnb.PruneBoth, []string{"hi"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			log := &pruneLog{}
			s, err := bnb.NewStack[*tnode, int](leaves("root:2"), bnb.WithPruning(tc.policy), bnb.WithPruneHook(log.hook))
			require.NoError(t, err)
			s.Push(leaf("hi", 9), best(5))
			s.Push(leaf("lo", 5), best(5)) // ties are dominated
			assert.Equal(t, tc.popped, drain(s, best(5)))

			refused := 0
			for _, k := range log.kinds {
				if k == bnb.PrunedOnPush {
					refused++
				}
			}
			assert.Equal(t, tc.refused, refused)
		})
	}
}

func TestContainers_InvalidPruning(t *testing.T) {
	bad := bnb.WithPruning(bnb.Pruning(0x10))
	_, err := bnb.NewStack[*tnode, int](nil, bad)
	assert.ErrorIs(t, err, bnb.ErrOptionViolation)
	_, err = bnb.NewQueue[*tnode, int](nil, bad)
	assert.ErrorIs(t, err, bnb.ErrOptionViolation)
	_, err = bnb.NewBestFirst[*tnode, int](nil, bad)
	assert.ErrorIs(t, err, bnb.ErrOptionViolation)
	_, err = bnb.NewRandom[*tnode, int](nil, 1, bad)
	assert.ErrorIs(t, err, bnb.ErrOptionViolation)
}

func TestRandom_SeededAndExhaustive(t *testing.T) {
	order := func(seed int64) []string {
		r, err := bnb.NewRandom[*tnode, int](leaves("a:1 b:2 c:3 d:4 e:5 f:6"), seed)
		require.NoError(t, err)
		return drain(r, none)
	}
	first := order(42)
	assert.Equal(t, first, order(42))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f"}, first)
	assert.Equal(t, order(0), order(1)) // 0 selects the default seed
}

func TestRandom_Pruning(t *testing.T) {
	r, err := bnb.NewRandom[*tnode, int](leaves("a:1 b:9"), 7)
	require.NoError(t, err)
	r.Push(leaf("c", 2), best(3))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"b"}, drain(r, best(3)))
}
