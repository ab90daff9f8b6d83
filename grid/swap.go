package grid

// SwapGrid is a double-buffered pair of Grids with identical dimensions.
// Set always writes the active buffer and At always reads the other one,
// so within a pass no read can observe that pass's own writes.
// Swap flips the roles without moving any data.
type SwapGrid[T any] struct {
	buffers [2]*Grid[T]
	active  int
}

// NewSwap allocates two independent width×height Grids sharing one
// sentinel. The active (write) index starts at 0.
// Returns ErrInvalidDimensions if width<=0 or height<=0.
// Complexity: O(W×H) time and memory.
func NewSwap[T any](width, height int, sentinel T) (*SwapGrid[T], error) {
	var s SwapGrid[T]
	for i := range s.buffers {
		g, err := New(width, height, sentinel)
		if err != nil {
			return nil, err
		}
		s.buffers[i] = g
	}

	return &s, nil
}

// Width returns the number of columns.
func (s *SwapGrid[T]) Width() int { return s.buffers[0].width }

// Height returns the number of rows.
func (s *SwapGrid[T]) Height() int { return s.buffers[0].height }

// Active returns the index (0 or 1) of the buffer Set writes to.
func (s *SwapGrid[T]) Active() int { return s.active }

// Contains reports whether (x,y) lies within the grid.
func (s *SwapGrid[T]) Contains(x, y int) bool {
	return s.buffers[0].Contains(x, y)
}

// At reads (x,y) from the inactive buffer, i.e. the state committed by the
// pass before the last Swap. Out-of-range reads return the sentinel.
func (s *SwapGrid[T]) At(x, y int) T {
	return s.buffers[1-s.active].At(x, y)
}

// Set writes v at (x,y) into the active buffer. Same precondition as Grid.Set.
func (s *SwapGrid[T]) Set(x, y int, v T) {
	s.buffers[s.active].Set(x, y, v)
}

// Swap exchanges the read and write roles. O(1).
func (s *SwapGrid[T]) Swap() {
	s.active = 1 - s.active
}

// Load copies values into the active buffer.
// Returns ErrLengthMismatch unless len(values) == Width*Height.
func (s *SwapGrid[T]) Load(values []T) error {
	return s.buffers[s.active].Load(values)
}

// Reset fills both buffers with v and makes buffer 0 active again.
// Complexity: O(W×H).
func (s *SwapGrid[T]) Reset(v T) {
	for _, b := range s.buffers {
		b.Fill(v)
	}
	s.active = 0
}
