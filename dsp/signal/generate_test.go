package signal

import "testing"

func TestNoiseReproducible(t *testing.T) {
	a, err := NewGenerator(WithSeed(7)).Noise(1, 256)
	if err != nil {
		t.Fatalf("Noise: %v", err)
	}
	b, err := NewGenerator(WithSeed(7)).Noise(1, 256)
	if err != nil {
		t.Fatalf("Noise: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("sample %d out of range: %v", i, a[i])
		}
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a, _ := NewGenerator(WithSeed(1)).Noise(1, 64)
	b, _ := NewGenerator(WithSeed(2)).Noise(1, 64)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNoiseErrors(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Noise(1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.Noise(-1, 4); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestSine(t *testing.T) {
	s, err := NewGenerator().Sine(0.25, 1, 8)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if s[1] < 0.999 {
		t.Fatalf("s[1] = %v, want ~1", s[1])
	}
}

func TestImpulseAndRamp(t *testing.T) {
	imp := Impulse(4, 3)
	if imp[3] != 1 || imp[0] != 0 {
		t.Fatalf("unexpected impulse %v", imp)
	}
	if got := Impulse(4, 9); got[0] != 0 || got[3] != 0 {
		t.Fatalf("out-of-range impulse should be zero, got %v", got)
	}

	r := Ramp(3)
	if r[0] != 1 || r[2] != 3 {
		t.Fatalf("unexpected ramp %v", r)
	}
}
