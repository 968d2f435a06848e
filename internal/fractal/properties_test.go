package fractal_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mathmodel/internal/fractal"
)

var _ = Describe("Evaluate", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(7))
	})

	randomPoint := func(radius float64) complex128 {
		return complex((rng.Float64()*2-1)*radius, (rng.Float64()*2-1)*radius)
	}

	Context("for parameter maps", func() {
		It("returns 0 when the sample starts outside the bailout radius", func() {
			rule := fractal.Julia(complex(0.285, 0.01))
			for i := 0; i < 200; i++ {
				p := randomPoint(50)
				if real(p)*real(p)+imag(p)*imag(p) <= 100 {
					continue
				}
				Expect(fractal.Evaluate(p, rule, 10, 100)).To(BeZero())
			}
		})
	})

	Context("for every named rule", func() {
		It("is idempotent", func() {
			for _, name := range fractal.Names() {
				rule, err := fractal.Lookup(name)
				Expect(err).NotTo(HaveOccurred())
				for i := 0; i < 100; i++ {
					p := randomPoint(2)
					Expect(fractal.Evaluate(p, rule, rule.Bailout, 64)).
						To(Equal(fractal.Evaluate(p, rule, rule.Bailout, 64)))
				}
			}
		})

		It("returns 0 for every point when the iteration cap is 0", func() {
			for _, name := range fractal.Names() {
				rule, _ := fractal.Lookup(name)
				for i := 0; i < 50; i++ {
					Expect(fractal.Evaluate(randomPoint(3), rule, rule.Bailout, 0)).To(BeZero())
				}
			}
		})

		It("stays within [0, 1]", func() {
			for _, name := range fractal.Names() {
				rule, _ := fractal.Lookup(name)
				for i := 0; i < 200; i++ {
					v := fractal.Evaluate(randomPoint(3), rule, rule.Bailout, 50)
					Expect(v).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
				}
			}
		})
	})

	Context("for the Mandelbrot map", func() {
		rule := fractal.Mandelbrot()

		It("keeps the origin inside the set", func() {
			Expect(fractal.Evaluate(0, rule, 2, 50)).To(Equal(1.0))
		})

		It("lets (2, 2) escape after a single update", func() {
			Expect(fractal.Evaluate(complex(2, 2), rule, 2, 50)).To(BeNumerically("~", 0.02, 1e-15))
		})
	})
})
