package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, 1, cfg.PeerGroupCapacity)
	assert.Equal(t, 0, cfg.PoolCapacity)
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{PeerGroupCapacity: -3, PoolCapacity: -1}.withDefaults()

	assert.Same(t, GetDefaultLogger(), cfg.Logger)
	assert.Equal(t, DefaultConfig().PeerGroupCapacity, cfg.PeerGroupCapacity)
	assert.Equal(t, DefaultConfig().PoolCapacity, cfg.PoolCapacity)

	custom := Config{Logger: NewNoOpLogger(), PeerGroupCapacity: 4, PoolCapacity: 16}.withDefaults()
	assert.Equal(t, 4, custom.PeerGroupCapacity)
	assert.Equal(t, 16, custom.PoolCapacity)
}

func TestNewNodeWithConfigCapacities(t *testing.T) {
	node := NewNodeWithConfig("o", 0, "", Config{Logger: NewNoOpLogger(), PeerGroupCapacity: 4, PoolCapacity: 16})

	assert.Equal(t, 16, cap(node.pool.members))
	assert.NoError(t, node.AddPeer(newQuietNode("p", 0, "")))
	assert.Equal(t, 4, cap(node.peers.groups["p"]))
}
