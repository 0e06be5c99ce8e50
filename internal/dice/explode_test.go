package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DieTestSuite struct {
	suite.Suite
}

func TestDieTestSuite(t *testing.T) {
	suite.Run(t, new(DieTestSuite))
}

func (s *DieTestSuite) mustDie(faces int) *Die {
	d, err := New(faces)
	s.Require().NoError(err)
	return d
}

func (s *DieTestSuite) TestNewRejectsInvalidFaceCounts() {
	for _, faces := range []int{-6, -1, 0, 1} {
		d, err := New(faces)
		s.Require().ErrorIs(err, ErrInvalidFaceCount)
		s.Nil(d)
	}
}

func (s *DieTestSuite) TestNewAcceptsTwoOrMoreFaces() {
	for _, faces := range []int{2, 3, 4, 6, 8, 10, 12, 20, 100} {
		d, err := New(faces)
		s.Require().NoError(err)
		s.Equal(faces, d.Faces())
	}
}

func (s *DieTestSuite) TestProbabilityAtLeastBaseCase() {
	for _, faces := range []int{2, 4, 6, 12, 20} {
		d := s.mustDie(faces)
		for _, target := range []int{1, 0, -1, -100} {
			s.Equal(1.0, d.ProbabilityAtLeast(target))
		}
	}
}

func (s *DieTestSuite) TestProbabilityAtLeastD6Target4() {
	// Faces 4 and 5 succeed directly (2/6); face 6 explodes and the
	// remaining target of -2 is certain (1/6). Total 3/6.
	d := s.mustDie(6)
	s.InDelta(0.5, d.ProbabilityAtLeast(4), 1e-12)
}

func (s *DieTestSuite) TestProbabilityAtLeastD6Target6() {
	// No face between 6 and 5 succeeds directly; only the explosion
	// path contributes, and it is certain once taken.
	d := s.mustDie(6)
	s.InDelta(1.0/6.0, d.ProbabilityAtLeast(6), 1e-12)
}

func (s *DieTestSuite) TestProbabilityAtLeastSatisfiesRecurrence() {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		faces := 2 + rng.Intn(19)
		target := faces + 1 + rng.Intn(60)

		d := s.mustDie(faces)

		direct := 0
		if target <= faces {
			direct = faces - target
		}

		want := float64(direct)/float64(faces) +
			d.ProbabilityAtLeast(target-faces)/float64(faces)
		s.InDelta(want, d.ProbabilityAtLeast(target), 1e-12)
	}
}

func (s *DieTestSuite) TestProbabilityAtLeastNonIncreasingInTarget() {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		faces := 2 + rng.Intn(19)
		t1 := rng.Intn(50)
		t2 := t1 + 1 + rng.Intn(50)

		d := s.mustDie(faces)
		s.GreaterOrEqual(d.ProbabilityAtLeast(t1), d.ProbabilityAtLeast(t2))
	}
}

func (s *DieTestSuite) TestProbabilityAtLeastWithinUnitInterval() {
	for _, faces := range []int{2, 3, 6, 12} {
		d := s.mustDie(faces)
		for target := -5; target <= 100; target++ {
			p := d.ProbabilityAtLeast(target)
			s.GreaterOrEqual(p, 0.0)
			s.LessOrEqual(p, 1.0)
		}
	}
}

func (s *DieTestSuite) TestProbabilityAtLeastMemoIsStable() {
	d := s.mustDie(6)

	first := d.ProbabilityAtLeast(25)
	others := map[int]float64{}
	for _, t := range []int{4, 6, 10, 19} {
		others[t] = d.ProbabilityAtLeast(t)
	}

	// Repeat queries return bit-identical results and do not disturb
	// previously computed targets.
	s.Equal(first, d.ProbabilityAtLeast(25))
	for t, want := range others {
		s.Equal(want, d.ProbabilityAtLeast(t))
	}
}

func (s *DieTestSuite) TestProbabilityAtLeastDepthExhaustion() {
	d := s.mustDie(6)

	prob, truncated := d.ProbabilityAtLeastDepth(100, 0)
	s.Equal(0.0, prob)
	s.True(truncated)

	// A partially resolved chain is flagged too, and the flag is
	// reproducible on a repeat query thanks to the memo taint.
	d2 := s.mustDie(6)
	prob, truncated = d2.ProbabilityAtLeastDepth(20, 2)
	s.True(truncated)

	again, truncatedAgain := d2.ProbabilityAtLeastDepth(20, 2)
	s.Equal(prob, again)
	s.True(truncatedAgain)
}

func (s *DieTestSuite) TestProbabilityAtLeastDepthNotBindingForRealisticInputs() {
	d := s.mustDie(4)

	prob, truncated := d.ProbabilityAtLeastDepth(400, DefaultMaxDepth)
	s.False(truncated)
	s.Greater(prob, 0.0)
}

func (s *DieTestSuite) TestExpectedValueClosedForm() {
	cases := []struct {
		faces int
		want  float64
	}{
		{faces: 4, want: 10.0 / 3.0},
		{faces: 6, want: 4.2},
		{faces: 12, want: 7.0909},
	}

	for _, tc := range cases {
		d := s.mustDie(tc.faces)
		s.InDelta(tc.want, d.ExpectedValue(), 1e-4)
	}
}

func (s *DieTestSuite) TestProbabilityMaxAtLeastSymmetry() {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		facesA := 2 + rng.Intn(19)
		facesB := 2 + rng.Intn(19)
		target := rng.Intn(40)

		a1, b1 := s.mustDie(facesA), s.mustDie(facesB)
		a2, b2 := s.mustDie(facesA), s.mustDie(facesB)

		s.InDelta(
			ProbabilityMaxAtLeast(a1, b1, target),
			ProbabilityMaxAtLeast(b2, a2, target),
			1e-12,
		)
	}
}

func (s *DieTestSuite) TestProbabilityMaxAtLeastMatchesIdentity() {
	d6 := s.mustDie(6)
	d12 := s.mustDie(12)

	pa := s.mustDie(6).ProbabilityAtLeast(10)
	pb := s.mustDie(12).ProbabilityAtLeast(10)
	want := 1 - (1-pa)*(1-pb)

	s.InDelta(want, ProbabilityMaxAtLeast(d6, d12, 10), 1e-9)
}

func (s *DieTestSuite) TestProbabilityMaxAtLeastSameDie() {
	a := s.mustDie(8)
	b := s.mustDie(8)

	p := s.mustDie(8).ProbabilityAtLeast(9)
	want := 1 - (1-p)*(1-p)

	s.InDelta(want, ProbabilityMaxAtLeast(a, b, 9), 1e-12)
}

func (s *DieTestSuite) TestProbabilityMaxAtLeastDepthPropagatesTruncation() {
	a := s.mustDie(6)
	b := s.mustDie(6)

	_, truncated := ProbabilityMaxAtLeastDepth(a, b, 100, 0)
	s.True(truncated)

	a2 := s.mustDie(6)
	b2 := s.mustDie(6)
	prob, truncated := ProbabilityMaxAtLeastDepth(a2, b2, 10, DefaultMaxDepth)
	s.False(truncated)
	s.Greater(prob, 0.0)
}
