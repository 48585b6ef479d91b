package greedy_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/reliefplan/core"
	"github.com/katalvlaran/reliefplan/greedy"
)

// GreedySuite groups tests for the urgency-first allocator.
type GreedySuite struct {
	suite.Suite
	regions []core.Region
}

func (s *GreedySuite) SetupTest() {
	s.regions = []core.Region{
		{Name: "valley", Need: 30, Urgency: 5},
		{Name: "coast", Need: 40, Urgency: 9},
		{Name: "hills", Need: 20, Urgency: 7},
	}
}

// TestUrgencyOrder: coast(9) then hills(7) then valley(5).
func (s *GreedySuite) TestUrgencyOrder() {
	res, err := greedy.Allocate(s.regions, 70)
	require.NoError(s.T(), err)
	require.Equal(s.T(), greedy.Method, res.Method)
	require.Equal(s.T(), []string{"coast", "hills", "valley"}, res.Order)
	require.Equal(s.T(), map[string]int{"coast": 40, "hills": 20, "valley": 10}, res.Allocation)
	require.Zero(s.T(), res.RemainingSupply)
}

// TestSurplus: supply beyond total need is returned untouched.
func (s *GreedySuite) TestSurplus() {
	res, err := greedy.Allocate(s.regions, 100)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 90, res.Allocated())
	require.Equal(s.T(), 10, res.RemainingSupply)
}

// TestZeroSupply: everyone is listed with a zero grant.
func (s *GreedySuite) TestZeroSupply() {
	res, err := greedy.Allocate(s.regions, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Allocation, 3)
	for name, q := range res.Allocation {
		require.Zerof(s.T(), q, "region %s must get nothing", name)
	}
	require.Zero(s.T(), res.RemainingSupply)
}

// TestEmptyRegions: a zero-length list keeps the whole supply.
func (s *GreedySuite) TestEmptyRegions() {
	res, err := greedy.Allocate(nil, 25)
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Allocation)
	require.Empty(s.T(), res.Order)
	require.Equal(s.T(), 25, res.RemainingSupply)
}

// TestTiesKeepInputOrder: equal urgency is served in input order.
func (s *GreedySuite) TestTiesKeepInputOrder() {
	regions := []core.Region{
		{Name: "b", Need: 5, Urgency: 1},
		{Name: "a", Need: 5, Urgency: 1},
		{Name: "c", Need: 5, Urgency: 1},
	}
	res, err := greedy.Allocate(regions, 7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"b", "a", "c"}, res.Order)
	require.Equal(s.T(), map[string]int{"b": 5, "a": 2, "c": 0}, res.Allocation)
}

// TestInvalidInput covers every rejection; none may clamp silently.
func (s *GreedySuite) TestInvalidInput() {
	_, err := greedy.Allocate(s.regions, -1)
	require.ErrorIs(s.T(), err, greedy.ErrNegativeSupply)
	require.ErrorIs(s.T(), err, core.ErrInvalidInput)

	_, err = greedy.Allocate([]core.Region{{Name: "x", Need: -3, Urgency: 1}}, 10)
	require.ErrorIs(s.T(), err, core.ErrInvalidInput)

	_, err = greedy.Allocate([]core.Region{{Name: "x", Need: 3, Urgency: -1}}, 10)
	require.ErrorIs(s.T(), err, core.ErrInvalidInput)

	_, err = greedy.Allocate([]core.Region{{Name: "x"}, {Name: "x"}}, 10)
	require.ErrorIs(s.T(), err, core.ErrDuplicateRegion)
}

// TestInputNotMutated: the caller's slice keeps its order and values.
func (s *GreedySuite) TestInputNotMutated() {
	before := append([]core.Region(nil), s.regions...)
	first, err := greedy.Allocate(s.regions, 55)
	require.NoError(s.T(), err)
	second, err := greedy.Allocate(s.regions, 55)
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, s.regions)
	require.Equal(s.T(), first, second)
}

// TestLogsEachGrant: one debug event per region.
func (s *GreedySuite) TestLogsEachGrant() {
	zc, logs := observer.New(zap.DebugLevel)
	_, err := greedy.Allocate(s.regions, 10, greedy.WithLogger(zap.New(zc)))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, logs.FilterMessage("greedy grant").Len())
	first := logs.All()[0].ContextMap()
	require.Equal(s.T(), "coast", first["region"])
	require.EqualValues(s.T(), 10, first["granted"])
}

func TestGreedySuite(t *testing.T) {
	suite.Run(t, new(GreedySuite))
}

// TestProperties checks the conservation and priority invariants on random input.
func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(12)
		regions := make([]core.Region, n)
		totalNeed := 0
		for i := range regions {
			regions[i] = core.Region{
				Name:    string(rune('a' + i)),
				Need:    r.Intn(50),
				Urgency: r.Intn(5),
			}
			totalNeed += regions[i].Need
		}
		supply := r.Intn(200)

		res, err := greedy.Allocate(regions, supply)
		require.NoError(t, err)
		require.Len(t, res.Allocation, n)

		want := totalNeed
		if supply < want {
			want = supply
		}
		require.Equal(t, want, res.Allocated())
		require.Equal(t, supply-want, res.RemainingSupply)

		for _, a := range regions {
			require.LessOrEqual(t, res.Allocation[a.Name], a.Need)
			// A strictly more urgent region is fully served before a less
			// urgent one receives anything.
			for _, b := range regions {
				if a.Urgency > b.Urgency && res.Allocation[b.Name] > 0 {
					require.Equal(t, a.Need, res.Allocation[a.Name])
				}
			}
		}
	}
}
