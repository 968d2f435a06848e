package fractal_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFractal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fractal Suite")
}
