package model

import (
	"errors"
	"fmt"
)

// ErrNilNode matches every ErrInvalidArgument through errors.Is
var ErrNilNode = errors.New("nil node")

// ErrInvalidArgument is returned when a node operation receives a nil node
// where a node reference is required. No state is changed when it is returned.
type ErrInvalidArgument struct {
	Op  string // Operation that rejected the argument, e.g. "AddPeer"
	Arg string // Name of the rejected argument
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("%s: invalid argument %q: %v", e.Op, e.Arg, ErrNilNode)
}

// Is reports whether target is ErrNilNode
func (e ErrInvalidArgument) Is(target error) bool {
	return target == ErrNilNode
}
