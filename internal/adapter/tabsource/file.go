package tabsource

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/its-jojoo/tabshelf/internal/core"
)

type fileTab struct {
	ID                  string `yaml:"id"`
	LastExecutedTime    *int64 `yaml:"lastExecutedTime"`
	SessionLastUsedTime *int64 `yaml:"sessionLastUsedTime"`
	FirstCreatedTime    *int64 `yaml:"firstCreatedTime"`
}

type fileDoc struct {
	Selected string    `yaml:"selected"`
	Tabs     []fileTab `yaml:"tabs"`
}

// FileSource reads tabs from a YAML (or JSON) document:
//
//	selected: t2
//	tabs:
//	  - id: t1
//	    lastExecutedTime: 1760000000000
//	  - id: t2
//	    firstCreatedTime: 1750000000000
type FileSource struct {
	Path     string
	Interval time.Duration

	last string
}

func NewFileSource(path string, interval time.Duration) *FileSource {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &FileSource{Path: path, Interval: interval}
}

func (f *FileSource) Watch(ctx context.Context) (<-chan struct{}, error) {
	// prime initial state
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrap(err, "read tab file")
	}
	f.last = fingerprint(data)

	ch := make(chan struct{}, 1)
	t := time.NewTicker(f.Interval)

	go func() {
		defer t.Stop()
		defer close(ch)

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				data, err := os.ReadFile(f.Path)
				if err != nil {
					continue
				}
				if fp := fingerprint(data); fp != f.last {
					f.last = fp
					select {
					case ch <- struct{}{}:
					default:
					}
				}
			}
		}
	}()

	return ch, nil
}

func (f *FileSource) Read() (Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "read tab file")
	}
	return Parse(data)
}

// Parse decodes a tab document and resolves each tab's last-used time.
func Parse(data []byte) (Snapshot, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, errors.Wrap(err, "parse tab file")
	}

	snap := Snapshot{
		Selected: doc.Selected,
		Tabs:     make([]core.TabSnapshot, 0, len(doc.Tabs)),
	}
	seen := make(map[string]struct{}, len(doc.Tabs))
	for i, t := range doc.Tabs {
		if t.ID == "" {
			return Snapshot{}, errors.Errorf("tab %d: id required", i)
		}
		if _, dup := seen[t.ID]; dup {
			return Snapshot{}, errors.Errorf("tab %d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = struct{}{}

		snap.Tabs = append(snap.Tabs, core.TabSnapshot{
			ID: t.ID,
			LastUsed: core.ResolveLastUsed(core.TabTimes{
				LastExecuted:    t.LastExecutedTime,
				SessionLastUsed: t.SessionLastUsedTime,
				FirstCreated:    t.FirstCreatedTime,
			}),
		})
	}
	return snap, nil
}

func fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
