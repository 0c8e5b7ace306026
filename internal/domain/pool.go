package domain

import (
	"sort"
	"time"
)

// TalkPool holds the talks that have not been placed into a session yet.
// A talk leaves the pool exactly once, when Pack selects it.
type TalkPool struct {
	talks []Talk
}

// NewTalkPool copies talks into a pool ordered by ascending duration.
// Talks of equal duration keep their input order.
func NewTalkPool(talks []Talk) *TalkPool {
	pooled := make([]Talk, len(talks))
	copy(pooled, talks)
	sort.SliceStable(pooled, func(i, j int) bool {
		return pooled[i].Duration < pooled[j].Duration
	})

	return &TalkPool{talks: pooled}
}

func (p *TalkPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.talks)
}

func (p *TalkPool) Remaining() []Talk {
	if p == nil {
		return nil
	}
	remaining := make([]Talk, len(p.talks))
	copy(remaining, p.talks)
	return remaining
}

// Pack removes and returns the subset of pooled talks whose total duration is
// the largest one not exceeding capacity. Durations are compared in whole
// seconds. An empty result is not an error.
func (p *TalkPool) Pack(capacity time.Duration) []Talk {
	if p.Len() == 0 {
		return nil
	}

	selected := knapsack(p.talks, int(capacity/time.Second))
	if len(selected) == 0 {
		return nil
	}

	session := make([]Talk, 0, len(selected))
	chosen := make(map[int]struct{}, len(selected))
	for _, idx := range selected {
		session = append(session, p.talks[idx])
		chosen[idx] = struct{}{}
	}

	kept := p.talks[:0]
	for i, talk := range p.talks {
		if _, ok := chosen[i]; ok {
			continue
		}
		kept = append(kept, talk)
	}
	p.talks = kept

	return session
}

// knapsack solves 0/1 knapsack with weight = value = duration in seconds and
// returns the chosen indices from the last item to the first.
func knapsack(items []Talk, capacity int) []int {
	if capacity < 0 {
		return nil
	}

	width := capacity + 1
	best := make([]int, (len(items)+1)*width)
	row := func(i int) []int {
		return best[i*width : (i+1)*width]
	}

	for i, item := range items {
		prev, next := row(i), row(i+1)
		weight := item.seconds()
		for w := 0; w <= capacity; w++ {
			if weight > w {
				next[w] = prev[w]
				continue
			}
			next[w] = max(prev[w], prev[w-weight]+weight)
		}
	}

	var selected []int
	left := capacity
	for i := len(items) - 1; i >= 0; i-- {
		weight := items[i].seconds()
		if weight == 0 || row(i+1)[left] != row(i)[left] {
			selected = append(selected, i)
			left -= weight
		}
	}

	return selected
}
