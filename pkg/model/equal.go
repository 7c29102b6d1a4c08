package model

import (
	"encoding/binary"
	"reflect"
	"slices"
)

// Equaler is implemented by data types that define their own equality.
// Data without it is compared with reflect.DeepEqual. An Equaler should also
// implement Hasher; otherwise its data adds a constant to Node.Hash.
type Equaler[D any] interface {
	Equal(other D) bool
}

// Equal reports whether n and other are structurally equal: same level, key
// and data, the same peers as a multiset, and the same pool in the same order,
// where peers and pool members are themselves compared this way.
//
// Cycles are allowed. Two nodes are equal when no finite walk through peers
// and pools can tell them apart, so a node that pools itself equals a ring of
// identical nodes. The nodes reachable from both sides are split into classes
// of equal nodes by partition refinement, which takes polynomial time in the
// size of the reachable graph. Cycles through data are not detected.
func (n *Node[K, D]) Equal(other *Node[K, D]) bool {
	if n == nil || other == nil {
		return false
	}
	if n == other {
		return true
	}
	if !shallowEqual(n, other) || n.peers.len() != other.peers.len() || n.pool.len() != other.pool.len() {
		return false
	}
	if n.peers.len() == 0 && n.pool.len() == 0 {
		return true
	}
	return newRefinement(n, other).equivalent(n, other)
}

// refinement partitions a reachable node set into classes of equal nodes
type refinement[K comparable, D any] struct {
	nodes   []*Node[K, D]
	index   map[*Node[K, D]]int
	class   []int
	classes int
	logger  Logger
}

func newRefinement[K comparable, D any](roots ...*Node[K, D]) *refinement[K, D] {
	r := &refinement[K, D]{
		index:  make(map[*Node[K, D]]int),
		logger: roots[0].logger,
	}
	for _, root := range roots {
		r.collect(root)
	}
	return r
}

// collect adds every node reachable from root through peers and pools
func (r *refinement[K, D]) collect(root *Node[K, D]) {
	queue := []*Node[K, D]{root}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		if _, seen := r.index[x]; seen {
			continue
		}
		r.index[x] = len(r.nodes)
		r.nodes = append(r.nodes, x)
		for _, group := range x.peers.groups {
			queue = append(queue, group...)
		}
		queue = append(queue, x.pool.members...)
	}
}

// initial groups nodes by key, level and data
func (r *refinement[K, D]) initial() {
	r.class = make([]int, len(r.nodes))
	reps := make(map[uint64][]int)
	for i, x := range r.nodes {
		h := x.shallowHash()
		id := -1
		for _, rep := range reps[h] {
			if shallowEqual(r.nodes[rep], x) {
				id = r.class[rep]
				break
			}
		}
		if id < 0 {
			id = r.classes
			r.classes++
			reps[h] = append(reps[h], i)
		}
		r.class[i] = id
	}
}

// signature encodes a node's class, the sorted classes of its peers and the
// ordered classes of its pool
func (r *refinement[K, D]) signature(x *Node[K, D], buf []byte, peers []int) ([]byte, []int) {
	buf = binary.AppendUvarint(buf[:0], uint64(r.class[r.index[x]]))

	peers = peers[:0]
	for _, group := range x.peers.groups {
		for _, p := range group {
			peers = append(peers, r.class[r.index[p]])
		}
	}
	slices.Sort(peers)
	buf = binary.AppendUvarint(buf, uint64(len(peers)))
	for _, c := range peers {
		buf = binary.AppendUvarint(buf, uint64(c))
	}

	buf = binary.AppendUvarint(buf, uint64(len(x.pool.members)))
	for _, m := range x.pool.members {
		buf = binary.AppendUvarint(buf, uint64(r.class[r.index[m]]))
	}
	return buf, peers
}

// equivalent refines the partition until it is stable or a and b separate.
// Classes only ever split, so a stable class count means a stable partition.
func (r *refinement[K, D]) equivalent(a, b *Node[K, D]) bool {
	r.initial()
	ia, ib := r.index[a], r.index[b]

	var (
		buf    []byte
		peers  []int
		rounds int
	)
	for r.class[ia] == r.class[ib] {
		rounds++
		ids := make(map[string]int, r.classes)
		next := make([]int, len(r.nodes))
		for i, x := range r.nodes {
			buf, peers = r.signature(x, buf, peers)
			id, ok := ids[string(buf)]
			if !ok {
				id = len(ids)
				ids[string(buf)] = id
			}
			next[i] = id
		}
		stable := len(ids) == r.classes
		r.class, r.classes = next, len(ids)
		if stable {
			break
		}
	}

	eq := r.class[ia] == r.class[ib]
	if r.logger.IsLevelEnabled(LogLevelDebug) {
		r.logger.Debug("compared %s and %s over %d nodes in %d rounds: %t", a, b, len(r.nodes), rounds, eq)
	}
	return eq
}

func shallowEqual[K comparable, D any](a, b *Node[K, D]) bool {
	return a.level == b.level && a.key == b.key && dataEqual(a.data, b.data)
}

// dataEqual treats any two absent values as equal, matching their zero hash
func dataEqual[D any](a, b D) bool {
	aNil, bNil := isNil(any(a)), isNil(any(b))
	if aNil || bNil {
		return aNil && bNil
	}
	if eq, ok := any(a).(Equaler[D]); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(any(a), any(b))
}
