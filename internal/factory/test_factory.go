package factory

import (
	"time"

	"github.com/jax2600/warpstery/internal/dependencies/mocks"
	"github.com/jax2600/warpstery/internal/services/codec"
	"github.com/jax2600/warpstery/internal/storage/memory"
	"github.com/jax2600/warpstery/internal/testutil"
)

// TestBaseURL is the public origin used by test apps
const TestBaseURL = "http://warpstery.test"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, codec.New(), TestBaseURL, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueSolution makes the next deal pick the given solution indices
func (t *TestApp) QueueSolution(suspect, weapon, room int) {
	t.MockRandom.QueueIntn(suspect, weapon, room)
}
