package matcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/core/ports"
)

// NodeID is the unique identifier for the identity matcher Graft node.
const NodeID graft.ID = "adapter.identity_matcher"

func init() {
	graft.Register(graft.Node[ports.IdentityMatcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IdentityMatcher, error) {
			return NewSubstring(), nil
		},
	})
}
