// Package instance keeps track of the header instances mounted by the
// pages currently displayed in browsers.
package instance

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bornholm/scaffold/internal/dom"
	"github.com/bornholm/scaffold/internal/header"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

var ErrNotFound = errors.New("instance not found")

type Instance struct {
	ID       string
	Path     string
	Document *dom.Document
	Shell    *header.Shell

	lastSeen time.Time
}

type Registry struct {
	mutex     sync.Mutex
	instances map[string]*Instance
	opts      *Options
}

func NewRegistry(funcs ...OptionFunc) *Registry {
	return &Registry{
		instances: map[string]*Instance{},
		opts:      NewOptions(funcs...),
	}
}

// Mount creates a header in a fresh document and mounts it for the page
// displayed at path.
func (r *Registry) Mount(path string) (*Instance, error) {
	doc := dom.NewDocument()
	shell := header.New(r.opts.HeaderOptions...)

	if err := shell.Mount(doc); err != nil {
		return nil, errors.WithStack(err)
	}

	inst := &Instance{
		ID:       xid.New().String(),
		Path:     path,
		Document: doc,
		Shell:    shell,
		lastSeen: r.opts.Now(),
	}

	r.mutex.Lock()
	evicted := r.evict()
	r.instances[inst.ID] = inst
	r.mutex.Unlock()

	for _, e := range evicted {
		e.Shell.Unmount()
	}

	return inst, nil
}

// evict removes the least recently seen instances until a new one can be
// stored without exceeding the cap. It expects the registry lock to be held.
func (r *Registry) evict() []*Instance {
	if r.opts.MaxInstances <= 0 {
		return nil
	}

	evicted := make([]*Instance, 0)

	for len(r.instances) >= r.opts.MaxInstances {
		var oldest *Instance
		for _, inst := range r.instances {
			if oldest == nil || inst.lastSeen.Before(oldest.lastSeen) {
				oldest = inst
			}
		}

		delete(r.instances, oldest.ID)
		evicted = append(evicted, oldest)
	}

	return evicted
}

func (r *Registry) Get(id string) (*Instance, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	inst, exists := r.instances[id]
	if !exists {
		return nil, errors.Wrapf(ErrNotFound, "'%s'", id)
	}

	inst.lastSeen = r.opts.Now()

	return inst, nil
}

// Dispatch forwards an interaction reported by the browser to the
// instance document. Targets the document does not know about are
// dispatched as outside of every header element.
func (r *Registry) Dispatch(id string, kind dom.EventKind, targetID string) (*Instance, error) {
	inst, err := r.Get(id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	inst.Document.Dispatch(dom.Event{
		Kind:   kind,
		Target: inst.Document.Lookup(targetID),
	})

	return inst, nil
}

// Unmount unmounts and forgets the instance. Unknown ids are ignored.
func (r *Registry) Unmount(id string) {
	r.mutex.Lock()
	inst, exists := r.instances[id]
	delete(r.instances, id)
	r.mutex.Unlock()

	if !exists {
		return
	}

	inst.Shell.Unmount()
}

func (r *Registry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.instances)
}

// Sweep unmounts the instances idle for longer than the idle timeout
// and returns how many were removed.
func (r *Registry) Sweep() int {
	deadline := r.opts.Now().Add(-r.opts.IdleTimeout)

	r.mutex.Lock()
	expired := make([]*Instance, 0)
	for id, inst := range r.instances {
		if inst.lastSeen.After(deadline) {
			continue
		}

		expired = append(expired, inst)
		delete(r.instances, id)
	}
	r.mutex.Unlock()

	for _, inst := range expired {
		inst.Shell.Unmount()
	}

	return len(expired)
}

// Run sweeps idle instances periodically until ctx is done, then
// unmounts every remaining instance.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.unmountAll()
			return

		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				slog.DebugContext(ctx, "idle header instances unmounted", slog.Int("removed", removed), slog.Int("remaining", r.Len()))
			}
		}
	}
}

func (r *Registry) unmountAll() {
	r.mutex.Lock()
	instances := r.instances
	r.instances = map[string]*Instance{}
	r.mutex.Unlock()

	for _, inst := range instances {
		inst.Shell.Unmount()
	}
}
