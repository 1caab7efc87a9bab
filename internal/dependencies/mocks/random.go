package mocks

import "github.com/jax2600/warpstery/internal/dependencies/random"

var _ random.Random = (*MockRandom)(nil)

// MockRandom replays queued draws. Once the queue runs dry every draw is 0,
// which picks the first card of each category and the first random event.
// Shuffle never reorders, so a deal hands out the pool in catalog order.
type MockRandom struct {
	queue []int

	// Shuffles counts Shuffle calls
	Shuffles int
}

func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// QueueIntn appends draws; each is reduced modulo the n it is drawn against
func (r *MockRandom) QueueIntn(values ...int) {
	r.queue = append(r.queue, values...)
}

func (r *MockRandom) Intn(n int) int {
	if len(r.queue) == 0 || n <= 0 {
		return 0
	}
	v := r.queue[0]
	r.queue = r.queue[1:]
	return v % n
}

func (r *MockRandom) Shuffle(int, func(i, j int)) {
	r.Shuffles++
}

// Pending returns how many queued draws have not been consumed
func (r *MockRandom) Pending() int {
	return len(r.queue)
}

// Reset drops the queue and the shuffle count
func (r *MockRandom) Reset() {
	r.queue = nil
	r.Shuffles = 0
}
