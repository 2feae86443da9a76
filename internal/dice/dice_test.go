package dice

import "testing"

func TestRollerDeterminism(t *testing.T) {
	a := NewRoller(42)
	b := NewRoller(42)

	for i := 0; i < 100; i++ {
		if a.D100() != b.D100() {
			t.Fatal("same seed should produce identical rolls")
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	r := NewRoller(1)

	for i := 0; i < 50; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if r.Chance(-10) {
			t.Fatal("negative likelihood must never succeed")
		}
		if !r.Chance(100) {
			t.Fatal("Chance(100) must always succeed")
		}
		if !r.Chance(150) {
			t.Fatal("likelihood above 100 must always succeed")
		}
	}
}

func TestChanceDistribution(t *testing.T) {
	r := NewRoller(7)
	hits := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if r.Chance(30) {
			hits++
		}
	}
	// 30% +- generous tolerance for a seeded run
	if hits < 2700 || hits > 3300 {
		t.Errorf("Chance(30) over %d trials: got %d hits, want roughly 3000", trials, hits)
	}
}

func TestBetweenBounds(t *testing.T) {
	r := NewRoller(3)
	for i := 0; i < 1000; i++ {
		v := r.Between(1, 5)
		if v < 1 || v > 5 {
			t.Fatalf("Between(1,5) out of range: %d", v)
		}
	}

	if r.Between(4, 4) != 4 {
		t.Error("Between with equal bounds should return the bound")
	}
	if r.Between(9, 2) != 9 {
		t.Error("Between with inverted bounds should return min")
	}
}

func TestUniformBounds(t *testing.T) {
	r := NewRoller(11)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(1.1, 1.25)
		if v < 1.1 || v >= 1.25 {
			t.Fatalf("Uniform(1.1,1.25) out of range: %v", v)
		}
	}

	if r.Uniform(2.0, 2.0) != 2.0 {
		t.Error("Uniform with equal bounds should return lo")
	}
}

func TestPickBounds(t *testing.T) {
	r := NewRoller(5)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		idx := r.Pick(9)
		if idx < 0 || idx >= 9 {
			t.Fatalf("Pick(9) out of range: %d", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 9 {
		t.Errorf("Pick(9) over 1000 draws should hit all indices, hit %d", len(seen))
	}

	if r.Pick(0) != 0 || r.Pick(1) != 0 {
		t.Error("Pick of empty or single collection should return 0")
	}
}
