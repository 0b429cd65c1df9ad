package siteswap

import "testing"

func BenchmarkRender(b *testing.B) {
	r, err := New(Config{Settings: Settings{Scale: 2}})
	if err != nil {
		b.Fatalf("failed to create renderer: %v", err)
	}

	source := "pattern: (4,2x)(2x,4)\nhands:mills\ncamangle: (10,80)\nslowdown: 1.5\nbps: 5"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(source); err != nil {
			b.Fatalf("render failed: %v", err)
		}
	}
}
