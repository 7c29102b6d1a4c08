package model

import (
	"fmt"
)

// Node is a labeled vertex in a loosely connected graph. Key and level are
// fixed at construction; data may be replaced at any time. Peers are indexed
// by their own key, the pool keeps insertion order. Peers and pool members
// are shared references: a node never owns them and may even list itself.
//
// A Node is not safe for concurrent mutation.
type Node[K comparable, D any] struct {
	key    K
	level  int64
	data   D
	peers  *peerIndex[K, D]
	pool   *memberPool[K, D]
	logger Logger
}

var _ Thing[string, string] = (*Node[string, string])(nil)

// NewNode creates a new Node with empty peers and pool
func NewNode[K comparable, D any](key K, level int64, data D) *Node[K, D] {
	return NewNodeWithConfig(key, level, data, DefaultConfig())
}

// NewNodeWithConfig creates a new Node using the given configuration
func NewNodeWithConfig[K comparable, D any](key K, level int64, data D, config Config) *Node[K, D] {
	config = config.withDefaults()
	return &Node[K, D]{
		key:    key,
		level:  level,
		data:   data,
		peers:  newPeerIndex[K, D](config.PeerGroupCapacity),
		pool:   newMemberPool[K, D](config.PoolCapacity),
		logger: config.Logger,
	}
}

// Key returns the node's key
func (n *Node[K, D]) Key() K {
	return n.key
}

// Level returns the node's level
func (n *Node[K, D]) Level() int64 {
	return n.level
}

// Data returns the node's current data
func (n *Node[K, D]) Data() D {
	return n.data
}

// SetData replaces the node's data
func (n *Node[K, D]) SetData(data D) {
	n.data = data
}

// AddPeer files peer under its own key. The same peer may be added more than once.
func (n *Node[K, D]) AddPeer(peer *Node[K, D]) error {
	if peer == nil {
		n.logger.Warn("AddPeer on %s: rejected nil peer", n)
		return ErrInvalidArgument{Op: "AddPeer", Arg: "peer"}
	}
	n.peers.add(peer)
	if n.logger.IsLevelEnabled(LogLevelDebug) {
		n.logger.Debug("added peer %s to %s (%d peers)", peer, n, n.peers.len())
	}
	return nil
}

// OnePeer returns the first peer added under key, if any
func (n *Node[K, D]) OnePeer(key K) (*Node[K, D], bool) {
	return n.peers.first(key)
}

// Peers returns every peer. Group order is unspecified; order within a key is
// insertion order. The result is a copy and never nil.
func (n *Node[K, D]) Peers() []*Node[K, D] {
	return n.peers.all()
}

// PeersByKey returns a copy of the peers filed under key, or an empty slice
func (n *Node[K, D]) PeersByKey(key K) []*Node[K, D] {
	return n.peers.group(key)
}

// PeerCount returns the number of peers, duplicates included
func (n *Node[K, D]) PeerCount() int {
	return n.peers.len()
}

// RemovePeer removes the first peer under peer's key that is Equal to peer.
// It reports whether a peer was removed.
func (n *Node[K, D]) RemovePeer(peer *Node[K, D]) (bool, error) {
	if peer == nil {
		n.logger.Warn("RemovePeer on %s: rejected nil peer", n)
		return false, ErrInvalidArgument{Op: "RemovePeer", Arg: "peer"}
	}
	removed := n.peers.remove(peer)
	if removed && n.logger.IsLevelEnabled(LogLevelDebug) {
		n.logger.Debug("removed peer %s from %s", peer, n)
	}
	return removed, nil
}

// AppendToPool adds member to the end of the pool. Duplicates are kept.
func (n *Node[K, D]) AppendToPool(member *Node[K, D]) error {
	if member == nil {
		n.logger.Warn("AppendToPool on %s: rejected nil member", n)
		return ErrInvalidArgument{Op: "AppendToPool", Arg: "member"}
	}
	n.pool.append(member)
	if n.logger.IsLevelEnabled(LogLevelDebug) {
		n.logger.Debug("appended %s to pool of %s (%d members)", member, n, n.pool.len())
	}
	return nil
}

// Pool returns a copy of the pool in insertion order, never nil
func (n *Node[K, D]) Pool() []*Node[K, D] {
	return n.pool.list()
}

// PoolLen returns the number of pool entries, duplicates included
func (n *Node[K, D]) PoolLen() int {
	return n.pool.len()
}

// RemoveFromPool removes the first pool entry Equal to member and reports
// whether one was removed.
func (n *Node[K, D]) RemoveFromPool(member *Node[K, D]) (bool, error) {
	if member == nil {
		n.logger.Warn("RemoveFromPool on %s: rejected nil member", n)
		return false, ErrInvalidArgument{Op: "RemoveFromPool", Arg: "member"}
	}
	removed := n.pool.remove(member)
	if removed && n.logger.IsLevelEnabled(LogLevelDebug) {
		n.logger.Debug("removed %s from pool of %s", member, n)
	}
	return removed, nil
}

// String describes the node without following peers, pool or data
func (n *Node[K, D]) String() string {
	if n == nil {
		return "Node(nil)"
	}
	return fmt.Sprintf("Node(key=%v, level=%d, peers=%d, pool=%d)", n.key, n.level, n.peers.len(), n.pool.len())
}
