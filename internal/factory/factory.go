package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jax2600/warpstery/internal/dependencies/clock"
	"github.com/jax2600/warpstery/internal/dependencies/random"
	"github.com/jax2600/warpstery/internal/frame"
	"github.com/jax2600/warpstery/internal/services/codec"
	"github.com/jax2600/warpstery/internal/services/deal"
	"github.com/jax2600/warpstery/internal/services/game"
	"github.com/jax2600/warpstery/internal/services/notes"
	"github.com/jax2600/warpstery/internal/services/resolver"
	"github.com/jax2600/warpstery/internal/services/rounds"
	"github.com/jax2600/warpstery/internal/services/session"
	"github.com/jax2600/warpstery/internal/storage"
	"github.com/jax2600/warpstery/internal/storage/memory"
	redisstorage "github.com/jax2600/warpstery/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Engine
	Dealer         *deal.Service
	Resolver       *resolver.Service
	Rounds         *rounds.Tracker
	GameController *game.Controller
	Codec          *codec.Codec

	// Adapters
	NotesService   *notes.Service
	SessionService *session.Service
	FrameBuilder   *frame.Builder
	FrameAdapter   *frame.Adapter
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// StateSecret seals frame state when set (hex, 32 bytes)
	StateSecret string
	// RandomSeed makes every game deterministic when non-zero
	RandomSeed uint64
	// BaseURL is the public origin used for frame images and post URLs
	BaseURL string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	stateCodec := codec.New()
	if cfg.StateSecret != "" {
		key, err := codec.ParseKey(cfg.StateSecret)
		if err != nil {
			return nil, err
		}
		stateCodec = codec.NewSealed(*key)
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.RandomSeed != 0 {
		logger.Warn("using seeded randomness; games are predictable", slog.Uint64("seed", cfg.RandomSeed))
		rnd = random.NewSeeded(cfg.RandomSeed)
	}

	return newWithDependencies(store, clk, rnd, stateCodec, cfg.BaseURL, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	stateCodec *codec.Codec,
	baseURL string,
	logger *slog.Logger,
) *App {
	dealer := deal.New(rnd, logger)
	res := resolver.New(logger)
	tracker := rounds.New()
	gameController := game.NewController(dealer, res, tracker, rnd, logger)
	notesService := notes.New()
	sessionService := session.New(store, gameController, notesService, clk, logger)
	builder := frame.NewBuilder(baseURL, stateCodec)
	adapter := frame.NewAdapter(gameController, stateCodec, builder, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Dealer:         dealer,
		Resolver:       res,
		Rounds:         tracker,
		GameController: gameController,
		Codec:          stateCodec,
		NotesService:   notesService,
		SessionService: sessionService,
		FrameBuilder:   builder,
		FrameAdapter:   adapter,
	}
}
