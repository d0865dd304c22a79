package fourier

import (
	"errors"
	"sync"
	"testing"
)

func TestResolveMemoizesPerShape(t *testing.T) {
	reg := NewRegistry()

	e1, err := reg.Resolve(Shape1D(64))
	if err != nil {
		t.Fatalf("Resolve(1d/64) error: %v", err)
	}
	e2, err := reg.Resolve(Shape1D(64))
	if err != nil {
		t.Fatalf("second Resolve(1d/64) error: %v", err)
	}
	if e1 != e2 {
		t.Fatal("sequential resolves of the same shape returned distinct engines")
	}

	e3, err := reg.Resolve(Shape1D(128))
	if err != nil {
		t.Fatalf("Resolve(1d/128) error: %v", err)
	}
	if e3 == e1 {
		t.Fatal("distinct shapes returned the same engine")
	}

	e4, err := reg.Resolve(Shape2D(16, 16))
	if err != nil {
		t.Fatalf("Resolve(2d/16x16) error: %v", err)
	}
	if e4 == e1 || e4 == e3 {
		t.Fatal("2-D shape shares an engine with a 1-D shape")
	}

	if reg.Size() != 3 {
		t.Fatalf("registry size = %d, want 3", reg.Size())
	}
}

func TestResolveConcurrentSameKey(t *testing.T) {
	reg := NewRegistry()
	key := Shape2D(32, 32)

	const goroutines = 32
	engines := make([]*Engine, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer done.Done()
			start.Wait()
			e, err := reg.Resolve(key)
			if err != nil {
				t.Errorf("goroutine %d: Resolve error: %v", g, err)
				return
			}
			engines[g] = e
		}(g)
	}
	start.Done()
	done.Wait()

	for g := 1; g < goroutines; g++ {
		if engines[g] != engines[0] {
			t.Fatalf("goroutine %d observed a different engine instance", g)
		}
	}
	if reg.Size() != 1 {
		t.Fatalf("registry size = %d, want 1 (exactly one construction)", reg.Size())
	}
}

func TestResolveUnsupportedDimension(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Resolve(ShapeKey{Dim: 3, Width: 8, Height: 8})
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("error = %v, want ErrUnsupportedShape", err)
	}
	if reg.Size() != 0 {
		t.Fatalf("failed resolve left %d engines in the registry", reg.Size())
	}
}

func TestResolveInvalidExtents(t *testing.T) {
	reg := NewRegistry()

	cases := []ShapeKey{
		Shape1D(0),
		Shape1D(-4),
		Shape2D(0, 16),
		Shape2D(16, -1),
	}
	for _, key := range cases {
		_, err := reg.Resolve(key)
		if !errors.Is(err, ErrUnsupportedShape) {
			t.Fatalf("Resolve(%v) error = %v, want ErrUnsupportedShape", key, err)
		}
	}

	// A failed construction is not cached; the same key fails again and the
	// registry stays empty.
	_, err := reg.Resolve(Shape1D(0))
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("repeated invalid resolve error = %v, want ErrUnsupportedShape", err)
	}
	if reg.Size() != 0 {
		t.Fatalf("registry size = %d after failed resolves, want 0", reg.Size())
	}
}

func TestShapeKeyString(t *testing.T) {
	if got := Shape1D(512).String(); got != "1d/512" {
		t.Fatalf("Shape1D String = %q", got)
	}
	if got := Shape2D(512, 256).String(); got != "2d/512x256" {
		t.Fatalf("Shape2D String = %q", got)
	}
}
