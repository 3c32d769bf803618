package tabsource

import (
	"context"

	"github.com/its-jojoo/tabshelf/internal/core"
)

// Snapshot is the host's tab set at one instant.
type Snapshot struct {
	Selected string
	Tabs     []core.TabSnapshot
}

// Source emits a signal when the tab set *may* have changed.
// Implementations can poll or subscribe to host events.
type Source interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
	Read() (Snapshot, error)
}
