package model

import (
	"slices"
)

// peerIndex groups peers by the key they had when added.
// Empty groups are never kept, so len(groups) counts distinct peer keys.
type peerIndex[K comparable, D any] struct {
	groups   map[K][]*Node[K, D]
	size     int
	groupCap int
}

func newPeerIndex[K comparable, D any](groupCap int) *peerIndex[K, D] {
	return &peerIndex[K, D]{
		groups:   make(map[K][]*Node[K, D]),
		groupCap: groupCap,
	}
}

func (x *peerIndex[K, D]) add(peer *Node[K, D]) {
	key := peer.Key()
	group, ok := x.groups[key]
	if !ok {
		group = make([]*Node[K, D], 0, x.groupCap)
	}
	x.groups[key] = append(group, peer)
	x.size++
}

func (x *peerIndex[K, D]) first(key K) (*Node[K, D], bool) {
	group := x.groups[key]
	if len(group) == 0 {
		return nil, false
	}
	return group[0], true
}

func (x *peerIndex[K, D]) all() []*Node[K, D] {
	peers := make([]*Node[K, D], 0, x.size)
	for _, group := range x.groups {
		peers = append(peers, group...)
	}
	return peers
}

func (x *peerIndex[K, D]) group(key K) []*Node[K, D] {
	group := x.groups[key]
	peers := make([]*Node[K, D], len(group))
	copy(peers, group)
	return peers
}

// remove drops the first peer in peer's group that is Equal to peer
func (x *peerIndex[K, D]) remove(peer *Node[K, D]) bool {
	key := peer.Key()
	group, ok := x.groups[key]
	if !ok {
		return false
	}
	i := slices.IndexFunc(group, peer.Equal)
	if i < 0 {
		return false
	}
	group = slices.Delete(group, i, i+1)
	if len(group) == 0 {
		delete(x.groups, key)
	} else {
		x.groups[key] = group
	}
	x.size--
	return true
}

func (x *peerIndex[K, D]) len() int {
	return x.size
}
