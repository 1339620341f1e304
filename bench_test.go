package inkmotion

import "testing"

func BenchmarkCompose(b *testing.B) {
	p := DefaultParams()
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		_, _ = Compose(i%DefaultTotalFrames, DefaultTotalFrames, p)
	}
}

func BenchmarkTrajectory(b *testing.B) {
	for _, parallel := range []bool{false, true} {
		name := "sequential"
		if parallel {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			m, err := New(&Config{TotalFrames: 1 << 16, Params: DefaultParams(), EnableParallel: parallel})
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			for b.Loop() {
				_ = m.Trajectory()
			}
		})
	}
}
