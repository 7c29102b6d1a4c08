package model

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher is implemented by keys and data that compute their own hash.
// Values that are equal must return the same hash.
type Hasher interface {
	Hash() uint64
}

// maxDataDepth bounds how far data hashing follows pointers, slices and maps.
// Cutting every path at the same depth keeps deeply equal values hashing alike.
const maxDataDepth = 8

// Hash combines the node's key, data and level, then folds in the shallow
// hash of every peer (order-insensitive) and pool member (order-sensitive).
// Members are not followed any further, so Hash terminates on cyclic peer
// and pool graphs and equal nodes always hash alike.
//
// Data that is itself a *Node is hashed with that node's Hash. A node whose
// data leads back to the node recurses without bound, as it does in Equal.
func (n *Node[K, D]) Hash() uint64 {
	h := n.shallowHash()

	var peers uint64
	for _, group := range n.peers.groups {
		for _, p := range group {
			peers += p.shallowHash()
		}
	}

	pool := uint64(1)
	for _, m := range n.pool.members {
		pool = 31*pool + m.shallowHash()
	}

	h = 17*h + peers
	h = 17*h + pool
	return h
}

func (n *Node[K, D]) shallowHash() uint64 {
	h := uint64(1)
	h = 17*h + hashKey(n.key)
	h = 17*h + hashData(n.data)
	h = 17*h + hashLevel(n.level)
	return h
}

func hashLevel(level int64) uint64 {
	u := uint64(level)
	return u ^ (u >> 32)
}

// hashKey hashes a comparable value the way == sees it: pointers by address
func hashKey(v any) uint64 {
	return hashValue(v, false)
}

// hashData hashes data the way dataEqual compares it. Data with its own
// Equal but no Hash gets a constant, since its equality cannot be seen from
// outside. Everything else hashes the way reflect.DeepEqual sees it.
func hashData[D any](v D) uint64 {
	if isNil(any(v)) {
		return 0
	}
	if h, ok := any(v).(Hasher); ok {
		return h.Hash()
	}
	if _, ok := any(v).(Equaler[D]); ok {
		return 0
	}
	return hashValue(any(v), true)
}

func hashValue(v any, deep bool) uint64 {
	if isNil(v) {
		return 0
	}
	if h, ok := v.(Hasher); ok {
		return h.Hash()
	}
	w := newValueHasher(deep)
	w.write(reflect.ValueOf(v), 0)
	return w.digest.Sum64()
}

func isNil(v any) bool {
	return v == nil || isNilKind(reflect.ValueOf(v))
}

type valueHasher struct {
	digest  *xxhash.Digest
	deep    bool
	scratch [8]byte
}

func newValueHasher(deep bool) *valueHasher {
	return &valueHasher{digest: xxhash.New(), deep: deep}
}

func (w *valueHasher) writeUint64(u uint64) {
	binary.LittleEndian.PutUint64(w.scratch[:], u)
	w.digest.Write(w.scratch[:])
}

func (w *valueHasher) writeByte(b byte) {
	w.scratch[0] = b
	w.digest.Write(w.scratch[:1])
}

func (w *valueHasher) write(rv reflect.Value, depth int) {
	if !rv.IsValid() {
		w.writeByte(0)
		return
	}
	if rv.CanInterface() && !isNilKind(rv) {
		if h, ok := rv.Interface().(Hasher); ok {
			w.writeUint64(h.Hash())
			return
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			w.writeByte(1)
		} else {
			w.writeByte(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.writeUint64(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.writeUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		w.writeFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		w.writeFloat(real(c))
		w.writeFloat(imag(c))
	case reflect.String:
		w.writeUint64(uint64(rv.Len()))
		w.digest.WriteString(rv.String())
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			w.write(rv.Index(i), depth)
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			w.write(rv.Field(i), depth)
		}
	case reflect.Interface:
		if rv.IsNil() {
			w.writeByte(0)
			return
		}
		w.write(rv.Elem(), depth)
	case reflect.Pointer:
		if rv.IsNil() {
			w.writeByte(0)
			return
		}
		if !w.deep {
			w.writeUint64(uint64(rv.Pointer()))
			return
		}
		if depth >= maxDataDepth {
			w.writeByte(1)
			return
		}
		w.write(rv.Elem(), depth+1)
	case reflect.Slice:
		// slices are never map keys, so they only appear in data
		w.writeUint64(uint64(rv.Len()))
		if rv.IsNil() || depth >= maxDataDepth {
			return
		}
		for i := 0; i < rv.Len(); i++ {
			w.write(rv.Index(i), depth+1)
		}
	case reflect.Map:
		w.writeUint64(uint64(rv.Len()))
		if rv.IsNil() || depth >= maxDataDepth {
			return
		}
		w.writeUint64(w.mapSum(rv, depth+1))
	case reflect.Chan, reflect.UnsafePointer:
		w.writeUint64(uint64(rv.Pointer()))
	case reflect.Func:
		// funcs are only ever deeply equal when both are nil
	}
}

// mapSum hashes each entry on its own and adds the results, so iteration
// order does not matter. Map keys are matched by ==, so they hash shallowly.
func (w *valueHasher) mapSum(rv reflect.Value, depth int) uint64 {
	var sum uint64
	iter := rv.MapRange()
	for iter.Next() {
		entry := newValueHasher(false)
		entry.write(iter.Key(), depth)
		entry.deep = w.deep
		entry.write(iter.Value(), depth)
		sum += entry.digest.Sum64()
	}
	return sum
}

func (w *valueHasher) writeFloat(f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	w.writeUint64(math.Float64bits(f))
}

func isNilKind(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
