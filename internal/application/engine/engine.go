package engine

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/andrescamacho/spaceminer-go/internal/application/common"
	"github.com/andrescamacho/spaceminer-go/internal/domain/physics"
	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/ports"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// Defaults used when Options leaves a field zero
const (
	DefaultWorldSize        = 40000.0
	DefaultInitialAsteroids = 1200
	DefaultViewportWidth    = 1280.0
	DefaultViewportHeight   = 720.0
)

// NoAsteroids asks New for a world holding only stations
const NoAsteroids = -1

// Intents are the raw control signals consumed each tick
type Intents struct {
	Thrust    bool
	LookAngle float64
	Fire      bool
	Tractor   bool
}

// Options configures a new Engine. Zero values fall back to defaults; a
// negative InitialAsteroids (see NoAsteroids) seeds none.
type Options struct {
	WorldSize        float64
	Viewport         shared.Vector2
	InitialAsteroids int
	Stations         []world.StationDefinition

	Clock   shared.Clock
	Random  shared.RandomSource
	Audio   ports.AudioCues
	Journal Journal
	Metrics MetricsRecorder
	Logger  *slog.Logger
}

// Engine is the simulation root. It owns the world store, the player ship and
// its refinery account; one mutex serializes ticks, request operations and
// snapshots. Listeners and audio cues run after the mutex is released.
type Engine struct {
	mu sync.Mutex

	worldSize float64
	viewport  shared.Vector2
	clock     shared.Clock
	rng       shared.RandomSource
	audio     ports.AudioCues
	journal   Journal
	metrics   MetricsRecorder
	logger    *slog.Logger

	sessionID string
	store     *world.Store
	ship      *player.Ship
	tick      uint64

	intents Intents
	// cues is the intent state last reported to audio
	cues     Intents
	zoom     physics.Zoom
	shake    physics.Shake
	camera   shared.Vector2
	laserHit *shared.Vector2
	nearby   *world.Entity

	statsListeners     []StatsListener
	proximityListeners []ProximityListener
}

// New builds a world: stations first, then the initial asteroid spawn attempts
// around a fresh player ship
func New(opts Options) *Engine {
	if opts.WorldSize <= 0 {
		opts.WorldSize = DefaultWorldSize
	}
	if opts.Viewport == (shared.Vector2{}) {
		opts.Viewport = shared.Vec(DefaultViewportWidth, DefaultViewportHeight)
	}
	switch {
	case opts.InitialAsteroids == 0:
		opts.InitialAsteroids = DefaultInitialAsteroids
	case opts.InitialAsteroids < 0:
		opts.InitialAsteroids = 0
	}
	if opts.Stations == nil {
		opts.Stations = world.DefaultStations(opts.WorldSize)
	}
	if opts.Clock == nil {
		opts.Clock = shared.NewRealClock()
	}
	if opts.Random == nil {
		opts.Random = shared.NewRandomSource(0)
	}
	if opts.Audio == nil {
		opts.Audio = ports.NoopAudio{}
	}
	if opts.Journal == nil {
		opts.Journal = noopJournal{}
	}
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}
	if opts.Logger == nil {
		opts.Logger = common.DiscardLogger()
	}

	e := &Engine{
		worldSize: opts.WorldSize,
		viewport:  opts.Viewport,
		clock:     opts.Clock,
		rng:       opts.Random,
		audio:     opts.Audio,
		journal:   opts.Journal,
		metrics:   opts.Metrics,
		sessionID: uuid.NewString(),
		store:     world.NewStore(opts.WorldSize, opts.Random),
		ship:      player.NewShip(opts.WorldSize),
		zoom:      physics.NewZoom(),
	}
	e.logger = opts.Logger.With("session", e.sessionID)

	placed := e.store.Populate(opts.Stations, opts.InitialAsteroids, e.ship.Body.Pos)
	e.camera = physics.Camera(e.ship.Body.Pos, e.viewport)
	e.logger.Info("world initialised",
		"world_size", e.worldSize,
		"stations", len(opts.Stations),
		"asteroids", placed,
		"attempts", opts.InitialAsteroids)

	return e
}

// SessionID identifies this play session in the journal
func (e *Engine) SessionID() string {
	return e.sessionID
}

// OnStats registers a listener for player-visible changes
func (e *Engine) OnStats(fn StatsListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statsListeners = append(e.statsListeners, fn)
}

// OnProximity registers a listener called every tick with the nearby station
func (e *Engine) OnProximity(fn ProximityListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.proximityListeners = append(e.proximityListeners, fn)
}

// SetIntents replaces the control signals used by subsequent ticks
func (e *Engine) SetIntents(in Intents) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.intents = in
}

// PointAt aims the ship at a pointer position given in screen coordinates
func (e *Engine) PointAt(pointer shared.Vector2) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.intents.LookAngle = physics.LookAngle(pointer, e.viewport)
}

// AdjustZoom moves the zoom target; the view eases toward it over later ticks
func (e *Engine) AdjustZoom(delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zoom.Adjust(delta)
}

// outbox collects callbacks to run once the lock is released
type outbox []func()

func (o *outbox) add(fn func()) {
	*o = append(*o, fn)
}

func (o outbox) flush() {
	for _, fn := range o {
		fn()
	}
}

// statsEvent queues a stats update to every listener
func (e *Engine) statsEvent(fx *outbox, changed StatsField) {
	if changed == 0 || len(e.statsListeners) == 0 {
		return
	}
	update := StatsUpdate{Changed: changed, Player: e.ship.Clone()}
	for _, fn := range e.statsListeners {
		fn := fn
		fx.add(func() { fn(update) })
	}
}
