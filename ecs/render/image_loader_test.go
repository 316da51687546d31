package render

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"
	"time"
)

func solid(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func waitBatch(t *testing.T, b *Batch) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := b.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("batch did not resolve in time")
	}
	return err
}

func TestProviderLoadAndGet(t *testing.T) {
	p := NewProvider(func(key string) (image.Image, error) {
		return solid(4, 4), nil
	})

	if _, ok := p.Get("stone-block"); ok {
		t.Fatalf("image should not exist before load")
	}

	b := p.Load("stone-block", "water-block", "stone-block", "")
	if got := len(b.Keys()); got != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", got)
	}
	if err := waitBatch(t, b); err != nil {
		t.Fatalf("unexpected batch error: %v", err)
	}
	for _, key := range []string{"stone-block", "water-block"} {
		if _, ok := p.Get(key); !ok {
			t.Fatalf("expected %s to be loaded", key)
		}
	}
	if !p.IsReady() {
		t.Fatalf("provider should be ready after batch resolved")
	}
}

func TestProviderFailedKeyDoesNotStallReadiness(t *testing.T) {
	p := NewProvider(func(key string) (image.Image, error) {
		if key == "missing" {
			return nil, errors.New("no such sprite")
		}
		return solid(2, 2), nil
	})

	fired := make(chan struct{}, 2)
	p.Load("char-boy", "missing")
	p.OnReady(func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("OnReady never fired")
	}

	b := p.Load("missing")
	err := waitBatch(t, b)
	if err == nil {
		t.Fatalf("expected batch error for missing key")
	}
	if _, ok := p.Get("missing"); ok {
		t.Fatalf("failed key must not be returned by Get")
	}
	if _, ok := p.Get("char-boy"); !ok {
		t.Fatalf("good key should still load")
	}

	select {
	case <-fired:
		t.Fatalf("OnReady callback fired twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestProviderOnReadyWhenAlreadyReady(t *testing.T) {
	p := NewProvider(func(string) (image.Image, error) { return solid(1, 1), nil })
	called := false
	p.OnReady(func() { called = true })
	if !called {
		t.Fatalf("OnReady should run immediately with nothing pending")
	}
}

func TestProviderSharesInFlightDecodes(t *testing.T) {
	var decodes atomic.Int32
	gate := make(chan struct{})
	p := NewProvider(func(string) (image.Image, error) {
		decodes.Add(1)
		<-gate
		return solid(1, 1), nil
	})

	first := p.Load("enemy-bug")
	second := p.Load("enemy-bug")
	if p.IsReady() {
		t.Fatalf("provider should not be ready while decode is blocked")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := second.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wait to time out, got %v", err)
	}

	close(gate)
	if err := waitBatch(t, first); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if err := waitBatch(t, second); err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if n := decodes.Load(); n != 1 {
		t.Fatalf("expected one decode, got %d", n)
	}
}

func TestProviderRegister(t *testing.T) {
	p := NewProvider(func(string) (image.Image, error) {
		return nil, errors.New("decoder should not run")
	})
	img := solid(3, 3)
	p.Register("grass-block", img)
	got, ok := p.Get("grass-block")
	if !ok || got != img {
		t.Fatalf("expected registered image back")
	}
	if err := waitBatch(t, p.Load("grass-block")); err != nil {
		t.Fatalf("registered key should not be decoded again: %v", err)
	}
}

func TestDecoderReturningNilIsAnError(t *testing.T) {
	p := NewProvider(func(string) (image.Image, error) { return nil, nil })
	if err := waitBatch(t, p.Load("ghost")); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

type recordingSurface struct {
	draws []image.Point
}

func (s *recordingSurface) DrawImage(_ image.Image, x, y float64) {
	s.draws = append(s.draws, image.Pt(int(x), int(y)))
}

func TestDrawSpriteSkipsPendingImages(t *testing.T) {
	p := NewProvider(func(string) (image.Image, error) { return solid(1, 1), nil })
	s := &recordingSurface{}

	DrawSprite(s, p, "char-boy", 10, 20)
	if len(s.draws) != 0 {
		t.Fatalf("pending image must be an empty draw")
	}

	waitBatch(t, p.Load("char-boy"))
	DrawSprite(s, p, "char-boy", 10, 20)
	if len(s.draws) != 1 || s.draws[0] != image.Pt(10, 20) {
		t.Fatalf("expected one draw at (10,20), got %v", s.draws)
	}
}
