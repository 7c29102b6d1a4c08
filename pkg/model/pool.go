package model

import (
	"slices"
)

// memberPool is an ordered sequence of nodes that tolerates duplicates
type memberPool[K comparable, D any] struct {
	members []*Node[K, D]
}

func newMemberPool[K comparable, D any](capacity int) *memberPool[K, D] {
	return &memberPool[K, D]{members: make([]*Node[K, D], 0, capacity)}
}

func (p *memberPool[K, D]) append(member *Node[K, D]) {
	p.members = append(p.members, member)
}

func (p *memberPool[K, D]) list() []*Node[K, D] {
	members := make([]*Node[K, D], len(p.members))
	copy(members, p.members)
	return members
}

func (p *memberPool[K, D]) remove(member *Node[K, D]) bool {
	i := slices.IndexFunc(p.members, member.Equal)
	if i < 0 {
		return false
	}
	p.members = slices.Delete(p.members, i, i+1)
	return true
}

func (p *memberPool[K, D]) len() int {
	return len(p.members)
}
