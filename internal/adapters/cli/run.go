package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/andrescamacho/spaceminer-go/internal/adapters/audio"
	"github.com/andrescamacho/spaceminer-go/internal/adapters/metrics"
	"github.com/andrescamacho/spaceminer-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceminer-go/internal/application/autopilot"
	"github.com/andrescamacho/spaceminer-go/internal/application/common"
	ecocmd "github.com/andrescamacho/spaceminer-go/internal/application/economy/commands"
	ecoquery "github.com/andrescamacho/spaceminer-go/internal/application/economy/queries"
	"github.com/andrescamacho/spaceminer-go/internal/application/engine"
	appledger "github.com/andrescamacho/spaceminer-go/internal/application/ledger"
	ledgercmd "github.com/andrescamacho/spaceminer-go/internal/application/ledger/commands"
	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/config"
	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/database"
	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/logging"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		seed        uint64
		ticks       uint64
		fps         int
		autopilotOn bool
		journalOn   bool
		metricsOn   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation",
		Long: `Run the simulation headless until interrupted or the tick limit is reached.

With --autopilot the ship mines, refines, trades and upgrades on its own.
With --journal (or simulation.journal in the config) every credit movement
is written to the configured database.

Examples:
  spaceminer run --autopilot --journal --ticks 36000
  spaceminer run --autopilot --fps 0 --ticks 100000 --seed 7
  spaceminer run --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Simulation.Seed = seed
			}
			if flags.Changed("ticks") {
				cfg.Simulation.MaxTicks = ticks
			}
			if flags.Changed("fps") {
				cfg.Simulation.FrameRate = fps
			}
			if flags.Changed("autopilot") {
				cfg.Simulation.Autopilot = autopilotOn
			}
			if flags.Changed("journal") {
				cfg.Simulation.Journal = journalOn
			}
			if flags.Changed("metrics") {
				cfg.Metrics.Enabled = metricsOn
			}

			ctx, stop := signal.NotifyContext(ctxOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSimulation(ctx, cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 seeds from the clock)")
	cmd.Flags().Uint64Var(&ticks, "ticks", 0, "Stop after this many ticks (0 runs until interrupted)")
	cmd.Flags().IntVar(&fps, "fps", 60, "Ticks per second; 0 runs as fast as possible")
	cmd.Flags().BoolVar(&autopilotOn, "autopilot", false, "Let the autopilot fly the ship")
	cmd.Flags().BoolVar(&journalOn, "journal", false, "Persist credit movements to the database")
	cmd.Flags().BoolVar(&metricsOn, "metrics", false, "Serve Prometheus metrics")

	return cmd
}

func runSimulation(ctx context.Context, cfg *config.Config, out io.Writer) error {
	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	m := mediator.NewMediator()
	g, gctx := errgroup.WithContext(common.WithLogger(ctx, logger))
	// Background services outlive the simulation loop so queued work drains
	svcCtx, stopServices := context.WithCancel(gctx)
	defer stopServices()

	opts := engine.Options{
		WorldSize:        cfg.Simulation.WorldSize,
		Viewport:         shared.Vec(cfg.Simulation.ViewportWidth, cfg.Simulation.ViewportHeight),
		InitialAsteroids: cfg.Simulation.InitialAsteroids,
		Random:           shared.NewRandomSource(cfg.Simulation.Seed),
		Logger:           logger,
	}

	cues := audio.NewLogCues(logger, cfg.Logging.CueSampleInterval)
	opts.Audio = cues

	var (
		commandMetrics   *metrics.CommandMetricsCollector
		financialMetrics ledgercmd.TransactionMetrics
		journal          *appledger.JournalWriter
	)
	if cfg.Metrics.Enabled {
		reg := metrics.InitRegistry()
		sim := metrics.NewSimulationMetricsCollector()
		fin := metrics.NewFinancialMetricsCollector()
		commandMetrics = metrics.NewCommandMetricsCollector()
		for _, register := range []func() error{sim.Register, fin.Register, commandMetrics.Register} {
			if err := register(); err != nil {
				return fmt.Errorf("failed to register metrics: %w", err)
			}
		}
		opts.Metrics = sim
		financialMetrics = fin

		server := metrics.NewServer(cfg.Metrics.Address(), cfg.Metrics.Path, reg, logger)
		g.Go(func() error { return server.Run(svcCtx) })
	}
	m.Use(mediator.LoggingMiddleware())
	m.Use(metrics.PrometheusMiddleware(commandMetrics))

	if cfg.Simulation.Journal {
		db, err := database.NewConnection(&cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close(db)
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		repo := persistence.NewGormTransactionRepository(db)
		handler := ledgercmd.NewRecordTransactionHandler(repo, nil, financialMetrics)
		if err := mediator.RegisterHandler[*ledgercmd.RecordTransactionCommand](m, handler); err != nil {
			return err
		}

		journal = appledger.NewJournalWriter(m, appledger.DefaultJournalBuffer, logger)
		opts.Journal = journal
		g.Go(func() error { return journal.Run(svcCtx) })
	}

	eng := engine.New(opts)
	if err := ecocmd.Register(m, eng); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*ecoquery.GetMarketQuotesQuery](m, ecoquery.NewGetMarketQuotesHandler(eng)); err != nil {
		return err
	}
	watch(eng, logger)

	runnerOpts := []engine.RunnerOption{
		engine.WithMaxTicks(cfg.Simulation.MaxTicks),
		engine.WithRunnerLogger(logger),
	}
	if cfg.Simulation.Autopilot {
		runnerOpts = append(runnerOpts, engine.WithController(autopilot.New(m, logger)))
	}
	runner := engine.NewRunner(eng, cfg.Simulation.FrameRate, runnerOpts...)

	fmt.Fprintf(out, "Session %s started (seed %d)\n", eng.SessionID(), cfg.Simulation.Seed)
	started := time.Now()
	g.Go(func() error {
		defer stopServices()
		return runner.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	dropped := int64(-1)
	if journal != nil {
		dropped = journal.Dropped()
	}
	printSummary(out, eng.Status(), cues.Counts(), dropped, time.Since(started))
	return nil
}

// watch logs docking changes and stat updates
func watch(eng *engine.Engine, logger *slog.Logger) {
	var docked string
	eng.OnProximity(func(v *engine.StationView) {
		name := ""
		if v != nil {
			name = v.Name
		}
		if name == docked {
			return
		}
		if name != "" {
			logger.Info("in docking range", "station", name)
		} else {
			logger.Info("left docking range", "station", docked)
		}
		docked = name
	})
	eng.OnStats(func(u engine.StatsUpdate) {
		logger.Debug("stats changed",
			"fields", u.Changed.String(),
			"credits", u.Player.Credits,
			"cargo", u.Player.Cargo.Units(),
			"max_cargo", u.Player.MaxCargo())
	})
}

// printSummary ends a run; dropped < 0 means the journal was off
func printSummary(w io.Writer, status engine.Status, cues map[string]int, dropped int64, elapsed time.Duration) {
	ship := status.Player
	heading(w, "SESSION SUMMARY")
	fmt.Fprintf(w, "  %-18s %d\n", "Ticks:", status.Tick)
	fmt.Fprintf(w, "  %-18s %s\n", "Wall time:", elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  %-18s %s\n", "Credits:", formatCredits(ship.Credits))
	fmt.Fprintf(w, "  %-18s %d/%d\n", "Hold:", ship.Cargo.Units(), ship.MaxCargo())
	fmt.Fprintf(w, "  %-18s %d pending\n", "Refinery jobs:", len(ship.Account.Jobs))
	fmt.Fprintf(w, "  %-18s %v\n", "Upgrades:", ship.UpgradeLevels)
	fmt.Fprintf(w, "  %-18s %d\n", "Ore collected:", cues[audio.CueCollect])
	if dropped >= 0 {
		fmt.Fprintf(w, "  %-18s %d\n", "Journal dropped:", dropped)
	}
	fmt.Fprintln(w, rule)
}
