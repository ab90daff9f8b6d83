package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/jumpflood/grid"
)

// SwapGridSuite exercises the read/write separation of SwapGrid.
type SwapGridSuite struct {
	suite.Suite
	s *grid.SwapGrid[int]
}

// SetupTest builds a fresh 3×2 SwapGrid with sentinel -1 for every test.
func (st *SwapGridSuite) SetupTest() {
	s, err := grid.NewSwap(3, 2, -1)
	require.NoError(st.T(), err)
	st.s = s
}

// TestDimensions checks the delegated accessors.
func (st *SwapGridSuite) TestDimensions() {
	st.Equal(3, st.s.Width())
	st.Equal(2, st.s.Height())
	st.Equal(0, st.s.Active())
	st.True(st.s.Contains(2, 1))
	st.False(st.s.Contains(3, 1))
}

// TestWritesInvisibleUntilSwap verifies a pass never observes its own writes.
func (st *SwapGridSuite) TestWritesInvisibleUntilSwap() {
	st.s.Set(1, 1, 42)
	st.Equal(0, st.s.At(1, 1), "write must not be visible before Swap")

	st.s.Swap()
	st.Equal(1, st.s.Active())
	st.Equal(42, st.s.At(1, 1), "write must be visible after Swap")
}

// TestSwapTwiceRestores verifies two swaps return to the original roles.
func (st *SwapGridSuite) TestSwapTwiceRestores() {
	st.s.Set(0, 0, 7) // buffer 0
	st.s.Swap()
	st.s.Set(0, 0, 8) // buffer 1
	st.Equal(7, st.s.At(0, 0))

	st.s.Swap()
	st.Equal(0, st.s.Active())
	st.Equal(8, st.s.At(0, 0))
}

// TestOutOfRangeReadsSentinel verifies reads off the grid return the sentinel
// from either buffer.
func (st *SwapGridSuite) TestOutOfRangeReadsSentinel() {
	st.Equal(-1, st.s.At(-1, 0))
	st.s.Swap()
	st.Equal(-1, st.s.At(0, 5))
}

// TestLoadTargetsActive checks Load fills the write buffer only.
func (st *SwapGridSuite) TestLoadTargetsActive() {
	st.Require().NoError(st.s.Load([]int{1, 2, 3, 4, 5, 6}))
	st.Equal(0, st.s.At(0, 0))

	st.s.Swap()
	st.Equal(1, st.s.At(0, 0))
	st.Equal(6, st.s.At(2, 1))

	st.ErrorIs(st.s.Load([]int{1}), grid.ErrLengthMismatch)
}

// TestReset clears both buffers and restores index 0.
func (st *SwapGridSuite) TestReset() {
	st.s.Set(0, 0, 3)
	st.s.Swap()
	st.s.Set(0, 0, 4)

	st.s.Reset(0)
	st.Equal(0, st.s.Active())
	st.Equal(0, st.s.At(0, 0))
	st.s.Swap()
	st.Equal(0, st.s.At(0, 0))
}

// TestSetOutOfRangePanics documents the delegated Set precondition.
func (st *SwapGridSuite) TestSetOutOfRangePanics() {
	st.Panics(func() { st.s.Set(3, 0, 1) })
}

func TestSwapGridSuite(t *testing.T) {
	suite.Run(t, new(SwapGridSuite))
}

// TestNewSwap_Errors verifies NewSwap propagates dimension errors.
func TestNewSwap_Errors(t *testing.T) {
	_, err := grid.NewSwap(0, 1, 0)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}
