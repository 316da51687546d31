package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxParallelDecodes bounds how many images a single batch decodes at once.
const maxParallelDecodes = 4

// Decoder produces the image for a key.
type Decoder func(key string) (image.Image, error)

// Provider loads images in the background and caches them by key.
type Provider struct {
	decode Decoder

	mu        sync.Mutex
	entries   map[string]*entry
	callbacks []func()
}

func NewProvider(decode Decoder) *Provider {
	return &Provider{
		decode:  decode,
		entries: make(map[string]*entry),
	}
}

// Batch is the completion signal of one Load call.
type Batch struct {
	keys []string
	done chan struct{}
	err  error
}

// Load starts loading keys and returns immediately. Keys already cached or
// in flight are shared with earlier batches, never decoded twice.
func (p *Provider) Load(keys ...string) *Batch {
	b := &Batch{done: make(chan struct{})}

	p.mu.Lock()
	seen := make(map[string]bool, len(keys))
	entries := make([]*entry, 0, len(keys))
	for _, key := range keys {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		e, ok := p.entries[key]
		if !ok {
			e = newEntry(key)
			p.entries[key] = e
		}
		entries = append(entries, e)
		b.keys = append(b.keys, key)
	}
	p.mu.Unlock()

	go p.run(b, entries)
	return b
}

func (p *Provider) run(b *Batch, entries []*entry) {
	var g errgroup.Group
	g.SetLimit(maxParallelDecodes)
	for _, e := range entries {
		g.Go(func() error {
			e.resolve(p.decode)
			return e.err
		})
	}
	if err := g.Wait(); err != nil {
		errs := make([]error, 0, len(entries))
		for _, e := range entries {
			if e.err != nil {
				errs = append(errs, fmt.Errorf("render: load %s: %w", e.key, e.err))
			}
		}
		b.err = errors.Join(errs...)
	}
	close(b.done)
	p.notifyIfReady()
}

// Keys returns the distinct keys this batch requested.
func (b *Batch) Keys() []string {
	return append([]string(nil), b.keys...)
}

// Done is closed once every key of the batch has resolved.
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Err reports the keys that failed. Only meaningful after Done is closed.
func (b *Batch) Err() error {
	select {
	case <-b.done:
		return b.err
	default:
		return nil
	}
}

// Wait blocks until the batch resolves or ctx ends. A batch that resolved
// with failed keys returns their joined error.
func (b *Batch) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return b.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func errNilImage(key string) error {
	return fmt.Errorf("decoder returned no image for %q", key)
}
