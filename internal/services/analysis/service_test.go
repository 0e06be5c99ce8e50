package analysis

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/kaboom/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/kaboom/internal/common/uuid/mocks"
	"github.com/KirkDiggler/kaboom/internal/models"
	sweepRepo "github.com/KirkDiggler/kaboom/internal/repositories/sweep"
	sweepMocks "github.com/KirkDiggler/kaboom/internal/repositories/sweep/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnalysisServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSweepRepo *sweepMocks.MockRepository
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	service       Service
	ctx           context.Context

	// Test data
	testTime    time.Time
	testSweepID string
}

func (s *AnalysisServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSweepRepo = sweepMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testSweepID = "test-sweep-id"

	svc, err := New(&Config{
		SweepRepo:     s.mockSweepRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *AnalysisServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalysisServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisServiceTestSuite))
}

func (s *AnalysisServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().ErrorIs(err, ErrNilSweepRepo)

	_, err = New(&Config{
		SweepRepo:     s.mockSweepRepo,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().ErrorIs(err, ErrNilClock)

	_, err = New(&Config{
		SweepRepo: s.mockSweepRepo,
		Clock:     s.mockClock,
	})
	s.Require().ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *AnalysisServiceTestSuite) TestQueryProbability() {
	output, err := s.service.QueryProbability(s.ctx, &QueryProbabilityInput{
		DieSize: 6,
		Target:  4,
	})
	s.Require().NoError(err)

	// Faces 4 and 5 succeed directly, face 6 explodes into certainty
	s.Equal(6, output.DieSize)
	s.Equal(4, output.Target)
	s.InDelta(0.5, output.Probability, 1e-12)
	s.False(output.Truncated)
}

func (s *AnalysisServiceTestSuite) TestQueryProbabilityTrivialTarget() {
	output, err := s.service.QueryProbability(s.ctx, &QueryProbabilityInput{
		DieSize: 6,
		Target:  -3,
	})
	s.Require().NoError(err)
	s.Equal(1.0, output.Probability)
	s.False(output.Truncated)
}

func (s *AnalysisServiceTestSuite) TestQueryProbabilityRejectsInvalidDieSize() {
	for _, size := range []int{1, 0, -4} {
		_, err := s.service.QueryProbability(s.ctx, &QueryProbabilityInput{
			DieSize: size,
			Target:  4,
		})
		s.Require().ErrorIs(err, ErrInvalidDieSize)
	}
}

func (s *AnalysisServiceTestSuite) TestQueryMaxProbability() {
	output, err := s.service.QueryMaxProbability(s.ctx, &QueryMaxProbabilityInput{
		DieSizeA: 6,
		DieSizeB: 12,
		Target:   10,
	})
	s.Require().NoError(err)

	want := 1 - (1-output.ProbabilityA)*(1-output.ProbabilityB)
	s.InDelta(want, output.Probability, 1e-9)
	s.False(output.Truncated)

	// The combinator is symmetric in its two dice
	flipped, err := s.service.QueryMaxProbability(s.ctx, &QueryMaxProbabilityInput{
		DieSizeA: 12,
		DieSizeB: 6,
		Target:   10,
	})
	s.Require().NoError(err)
	s.InDelta(output.Probability, flipped.Probability, 1e-12)
}

func (s *AnalysisServiceTestSuite) TestQueryExpectedValue() {
	cases := map[int]float64{
		4:  3.3333,
		6:  4.2,
		12: 7.0909,
	}

	for size, want := range cases {
		output, err := s.service.QueryExpectedValue(s.ctx, &QueryExpectedValueInput{
			DieSize: size,
		})
		s.Require().NoError(err)
		s.InDelta(want, output.ExpectedValue, 1e-4)
	}
}

func (s *AnalysisServiceTestSuite) TestQueryExpectedValueRejectsOneFacedDie() {
	_, err := s.service.QueryExpectedValue(s.ctx, &QueryExpectedValueInput{
		DieSize: 1,
	})
	s.Require().ErrorIs(err, ErrInvalidDieSize)
}

func (s *AnalysisServiceTestSuite) TestSweepSingle() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSweepID)

	var saved *models.Sweep
	s.mockSweepRepo.EXPECT().
		SaveSweep(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sweepRepo.SaveSweepInput) error {
			saved = input.Sweep
			return nil
		})

	output, err := s.service.SweepSingle(s.ctx, &SweepSingleInput{
		DieSizes: []int{4, 6},
		Targets:  []int{4, 6},
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Sweep)
	s.Equal(output.Sweep, saved)

	s.Equal(s.testSweepID, output.Sweep.ID)
	s.Equal(models.SweepKindSingle, output.Sweep.Kind)
	s.Equal(s.testTime, output.Sweep.CreatedAt)
	s.False(output.Sweep.Truncated)

	// d4: target 4 only succeeds through the explosion (1/4)
	prob, ok := output.Sweep.Cell(4, 4)
	s.Require().True(ok)
	s.InDelta(0.25, prob, 1e-12)

	// d6: faces 4,5 direct plus explosion
	prob, ok = output.Sweep.Cell(6, 4)
	s.Require().True(ok)
	s.InDelta(0.5, prob, 1e-12)

	// d6: only the explosion path reaches 6
	prob, ok = output.Sweep.Cell(6, 6)
	s.Require().True(ok)
	s.InDelta(1.0/6.0, prob, 1e-12)
}

func (s *AnalysisServiceTestSuite) TestSweepSingleValidatesGrid() {
	_, err := s.service.SweepSingle(s.ctx, &SweepSingleInput{
		Targets: []int{4},
	})
	s.Require().ErrorIs(err, ErrNoDieSizes)

	_, err = s.service.SweepSingle(s.ctx, &SweepSingleInput{
		DieSizes: []int{6},
	})
	s.Require().ErrorIs(err, ErrNoTargets)

	_, err = s.service.SweepSingle(s.ctx, &SweepSingleInput{
		DieSizes: []int{6, 1},
		Targets:  []int{4},
	})
	s.Require().ErrorIs(err, ErrInvalidDieSize)
}

func (s *AnalysisServiceTestSuite) TestSweepMax() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSweepID)
	s.mockSweepRepo.EXPECT().SaveSweep(s.ctx, gomock.Any()).Return(nil)

	output, err := s.service.SweepMax(s.ctx, &SweepMaxInput{
		FixedDieSize: 6,
		DieSizes:     []int{4},
		Targets:      []int{4},
	})
	s.Require().NoError(err)

	s.Equal(models.SweepKindMax, output.Sweep.Kind)
	s.Equal(6, output.Sweep.FixedDieSize)

	// P(d6 >= 4) = 0.5, P(d4 >= 4) = 0.25, so the max reaches 4 with
	// probability 1 - 0.5*0.75
	prob, ok := output.Sweep.Cell(4, 4)
	s.Require().True(ok)
	s.InDelta(0.625, prob, 1e-12)
}

func (s *AnalysisServiceTestSuite) TestSweepMaxRejectsInvalidFixedDie() {
	_, err := s.service.SweepMax(s.ctx, &SweepMaxInput{
		FixedDieSize: 1,
		DieSizes:     []int{4},
		Targets:      []int{4},
	})
	s.Require().ErrorIs(err, ErrInvalidDieSize)
}

func (s *AnalysisServiceTestSuite) TestGetSweep() {
	expected := &models.Sweep{
		ID:   s.testSweepID,
		Kind: models.SweepKindSingle,
	}

	s.mockSweepRepo.EXPECT().
		GetSweep(s.ctx, &sweepRepo.GetSweepInput{
			SweepID: s.testSweepID,
		}).
		Return(expected, nil)

	output, err := s.service.GetSweep(s.ctx, &GetSweepInput{
		SweepID: s.testSweepID,
	})
	s.Require().NoError(err)
	s.Equal(expected, output.Sweep)
}

func (s *AnalysisServiceTestSuite) TestGetSweepNotFound() {
	s.mockSweepRepo.EXPECT().
		GetSweep(s.ctx, gomock.Any()).
		Return(nil, sweepRepo.ErrSweepNotFound)

	_, err := s.service.GetSweep(s.ctx, &GetSweepInput{
		SweepID: "missing-sweep-id",
	})
	s.Require().ErrorIs(err, ErrSweepNotFound)
}

func (s *AnalysisServiceTestSuite) TestGetLatestSweep() {
	expected := &models.Sweep{
		ID:   s.testSweepID,
		Kind: models.SweepKindMax,
	}

	s.mockSweepRepo.EXPECT().
		GetLatestSweep(s.ctx, &sweepRepo.GetLatestSweepInput{
			Kind: models.SweepKindMax,
		}).
		Return(expected, nil)

	output, err := s.service.GetLatestSweep(s.ctx, &GetLatestSweepInput{
		Kind: models.SweepKindMax,
	})
	s.Require().NoError(err)
	s.Equal(expected, output.Sweep)
}

func (s *AnalysisServiceTestSuite) TestGetLatestSweepNotFound() {
	s.mockSweepRepo.EXPECT().
		GetLatestSweep(s.ctx, gomock.Any()).
		Return(nil, sweepRepo.ErrSweepNotFound)

	_, err := s.service.GetLatestSweep(s.ctx, &GetLatestSweepInput{
		Kind: models.SweepKindSingle,
	})
	s.Require().ErrorIs(err, ErrSweepNotFound)
}
