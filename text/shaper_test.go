package text

import (
	"sync"
	"testing"
)

// builtinTestFace creates a test Face at size 16 for builtin shaper tests.
func builtinTestFace(t testing.TB) Face {
	t.Helper()
	return loadTestFont(t).Face(16.0)
}

// TestBuiltinShapeEmpty tests shaping empty text.
func TestBuiltinShapeEmpty(t *testing.T) {
	face := builtinTestFace(t)

	if result := Shape("", face); result != nil {
		t.Errorf("Shape(\"\") = %v, want nil", result)
	}
}

// TestBuiltinShapeLatinText tests shaping basic Latin text.
func TestBuiltinShapeLatinText(t *testing.T) {
	face := builtinTestFace(t)

	tests := []struct {
		name string
		text string
	}{
		{"single", "A"},
		{"word", "Hello"},
		{"words", "Hello World"},
		{"digits", "0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := (&BuiltinShaper{}).Shape(tt.text, face)
			runes := []rune(tt.text)
			if len(result) != len(runes) {
				t.Fatalf("got %d glyphs, want %d", len(result), len(runes))
			}
			prevX := -1.0
			for i, g := range result {
				if g.Cluster != i {
					t.Errorf("glyph %d: Cluster = %d, want %d", i, g.Cluster, i)
				}
				if g.X <= prevX {
					t.Errorf("glyph %d: X = %f not increasing (prev %f)", i, g.X, prevX)
				}
				if g.XAdvance <= 0 {
					t.Errorf("glyph %d: XAdvance = %f, want > 0", i, g.XAdvance)
				}
				prevX = g.X
			}
		})
	}
}

// TestBuiltinShapeCyrillic tests that Cyrillic maps to real glyphs.
func TestBuiltinShapeCyrillic(t *testing.T) {
	face := builtinTestFace(t)

	result := Shape("Привет", face)
	if len(result) != 6 {
		t.Fatalf("got %d glyphs, want 6", len(result))
	}
	for i, g := range result {
		if g.GID == 0 {
			t.Errorf("glyph %d is .notdef", i)
		}
	}
}

func TestBuiltinShaperKerning(t *testing.T) {
	face := builtinTestFace(t)

	kerned := (&BuiltinShaper{}).Shape("AV", face)
	plain := (&BuiltinShaper{DisableKerning: true}).Shape("AV", face)
	if len(kerned) != 2 || len(plain) != 2 {
		t.Fatalf("got %d and %d glyphs, want 2", len(kerned), len(plain))
	}
	if kerned[1].X > plain[1].X {
		t.Errorf("kerned V at %f is right of unkerned V at %f", kerned[1].X, plain[1].X)
	}
	if plain[1].X != plain[0].XAdvance {
		t.Errorf("unkerned V at %f, want %f", plain[1].X, plain[0].XAdvance)
	}
}

func TestSetShaper(t *testing.T) {
	original := GetShaper()
	t.Cleanup(func() { SetShaper(original) })

	custom := &BuiltinShaper{DisableKerning: true}
	SetShaper(custom)
	if GetShaper() != custom {
		t.Error("GetShaper() did not return the shaper passed to SetShaper")
	}
}

func TestSetShaperNil(t *testing.T) {
	original := GetShaper()
	t.Cleanup(func() { SetShaper(original) })

	SetShaper(nil)
	if _, ok := GetShaper().(*BuiltinShaper); !ok {
		t.Errorf("SetShaper(nil) should restore BuiltinShaper, got %T", GetShaper())
	}
}

// TestShapeNilFace tests that a nil face yields no glyphs.
func TestShapeNilFace(t *testing.T) {
	if result := Shape("Hello", nil); result != nil {
		t.Errorf("Shape with nil face = %v, want nil", result)
	}
}

// TestShapeDifferentSizes tests that advances scale with the face size.
func TestShapeDifferentSizes(t *testing.T) {
	source := loadTestFont(t)

	var prev float64
	for _, size := range []float64{8, 12, 16, 24, 48} {
		result := Shape("Hello", source.Face(size))
		if len(result) != 5 {
			t.Fatalf("size %v: got %d glyphs, want 5", size, len(result))
		}
		total := result[4].X + result[4].XAdvance
		if total <= prev {
			t.Errorf("size %v: total advance %f should be > %f", size, total, prev)
		}
		prev = total
	}
}

// TestBuiltinShaperConcurrency tests thread safety of BuiltinShaper.
func TestBuiltinShaperConcurrency(t *testing.T) {
	face := builtinTestFace(t)
	shaper := &BuiltinShaper{}

	var wg sync.WaitGroup
	errs := make(chan string, 100)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if len(shaper.Shape("Hello World", face)) != 11 {
					errs <- "wrong glyph count"
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	if msg, ok := <-errs; ok {
		t.Errorf("concurrent shaping failed: %s", msg)
	}
}

// mockShaper returns one fixed-width glyph per rune.
type mockShaper struct {
	calls int
	width float64
}

func (m *mockShaper) Shape(text string, _ Face) []ShapedGlyph {
	m.calls++
	var out []ShapedGlyph
	for i := range []rune(text) {
		out = append(out, ShapedGlyph{GID: 1, Cluster: i, X: float64(i) * m.width, XAdvance: m.width})
	}
	return out
}

// TestCustomShaperIntegration tests that layout goes through the global
// shaper.
func TestCustomShaperIntegration(t *testing.T) {
	original := GetShaper()
	t.Cleanup(func() { SetShaper(original) })

	mock := &mockShaper{width: 10}
	SetShaper(mock)

	a := NewArrangement()
	a.AddLineOfText(NewFont(loadTestFont(t), 16), "abc", 0, 0)
	if mock.calls != 1 {
		t.Errorf("shaper called %d times, want 1", mock.calls)
	}
	if a.Len() != 3 || a.Glyph(2).X != 20 {
		t.Errorf("unexpected arrangement: %d glyphs", a.Len())
	}
}

func BenchmarkBuiltinShape(b *testing.B) {
	face := builtinTestFace(b)
	shaper := &BuiltinShaper{}
	b.ReportAllocs()
	for b.Loop() {
		_ = shaper.Shape("The quick brown fox jumps over the lazy dog", face)
	}
}
