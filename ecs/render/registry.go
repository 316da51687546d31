package render

import (
	"image"
	"sync"
)

// entry is one cached image. done is closed once img/err are final.
type entry struct {
	key  string
	once sync.Once
	done chan struct{}
	img  image.Image
	err  error
}

func newEntry(key string) *entry {
	return &entry{key: key, done: make(chan struct{})}
}

// resolve decodes the entry on the first call; later callers block until
// that first decode has finished.
func (e *entry) resolve(decode Decoder) {
	e.once.Do(func() {
		e.img, e.err = decode(e.key)
		if e.err == nil && e.img == nil {
			e.err = errNilImage(e.key)
		}
		close(e.done)
	})
}

func (e *entry) resolved() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// Get returns a loaded image by key.
func (p *Provider) Get(key string) (image.Image, bool) {
	if p == nil || key == "" {
		return nil, false
	}
	p.mu.Lock()
	e := p.entries[key]
	p.mu.Unlock()
	if e == nil || !e.resolved() || e.err != nil {
		return nil, false
	}
	return e.img, true
}

// Register stores an already decoded image under key. A key that is cached
// or loading already is left untouched.
func (p *Provider) Register(key string, img image.Image) {
	if p == nil || key == "" || img == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.entries[key]; ok {
		return
	}
	e := newEntry(key)
	e.resolve(func(string) (image.Image, error) { return img, nil })
	p.entries[key] = e
}

// IsReady reports whether every key requested so far has resolved, either
// to an image or to an error.
func (p *Provider) IsReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readyLocked()
}

func (p *Provider) readyLocked() bool {
	for _, e := range p.entries {
		if !e.resolved() {
			return false
		}
	}
	return true
}

// OnReady registers fn to run once every requested key has resolved. If the
// provider is already ready, fn runs immediately on the caller's goroutine;
// otherwise it runs on the loader goroutine that completes the last batch.
func (p *Provider) OnReady(fn func()) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	if p.readyLocked() {
		p.mu.Unlock()
		fn()
		return
	}
	p.callbacks = append(p.callbacks, fn)
	p.mu.Unlock()
}

func (p *Provider) notifyIfReady() {
	p.mu.Lock()
	if !p.readyLocked() || len(p.callbacks) == 0 {
		p.mu.Unlock()
		return
	}
	callbacks := p.callbacks
	p.callbacks = nil
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
