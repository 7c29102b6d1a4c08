package model

// Thing is the capability set of a graph node. *Node implements it; callers
// that only need to read or wire nodes can accept a Thing instead.
type Thing[K comparable, D any] interface {
	Key() K
	Level() int64
	Data() D
	SetData(data D)

	AddPeer(peer *Node[K, D]) error
	OnePeer(key K) (*Node[K, D], bool)
	Peers() []*Node[K, D]
	PeersByKey(key K) []*Node[K, D]
	RemovePeer(peer *Node[K, D]) (bool, error)

	AppendToPool(member *Node[K, D]) error
	Pool() []*Node[K, D]
	RemoveFromPool(member *Node[K, D]) (bool, error)

	Equal(other *Node[K, D]) bool
	Hash() uint64
}
