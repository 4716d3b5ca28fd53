package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/airline-tycoon-go/internal/adapters/api"
	"github.com/andrescamacho/airline-tycoon-go/internal/adapters/persistence"
	"github.com/andrescamacho/airline-tycoon-go/internal/application/simulation"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
	"github.com/andrescamacho/airline-tycoon-go/internal/infrastructure/config"
	"github.com/andrescamacho/airline-tycoon-go/internal/infrastructure/database"
	"github.com/andrescamacho/airline-tycoon-go/internal/infrastructure/pidfile"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	forceFlag := flag.Bool("force", false, "Kill any existing daemon and start a new one")
	flag.Parse()

	fmt.Println("Airline Tycoon Daemon v0.1.0")
	fmt.Println("============================")

	fmt.Println("Loading configuration...")
	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		if !*forceFlag {
			log.Fatalf("Failed to acquire PID file lock: %v\nUse --force to kill the existing daemon", err)
		}
		fmt.Println("Force mode enabled - attempting to kill existing daemon...")
		if killErr := pf.KillExisting(); killErr != nil {
			log.Fatalf("Failed to kill existing daemon: %v", killErr)
		}
		if err := pf.Acquire(); err != nil {
			log.Fatalf("Failed to acquire PID file lock after killing existing daemon: %v", err)
		}
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("Database connected")

	saves := persistence.NewGormSaveRepository(db)
	hist := persistence.NewGormHistoryRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, seed, err := saves.Load(ctx)
	if errors.Is(err, persistence.ErrNoSave) {
		fmt.Println("No save found - starting a new game")
		state, err = world.NewState(world.NewStateParams{
			Seed:          cfg.Simulation.Seed,
			BaseFuelPrice: cfg.Simulation.BaseFuelPrice,
			StartMoney:    cfg.Simulation.StartingCash,
			StartLevel:    cfg.Simulation.StartingLevel,
			Start:         time.Now().UTC().Truncate(24 * time.Hour),
		})
		seed = cfg.Simulation.Seed
	}
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}
	fmt.Printf("Game loaded: %s, $%.0f, level %d\n",
		state.Date.Format("2006-01-02"), state.Money, state.Level)

	var mu sync.RWMutex
	server := &http.Server{
		Addr:    cfg.Daemon.Address,
		Handler: api.NewStatusServer(&mu, state).Router(),
	}
	go func() {
		fmt.Printf("Status API listening on %s\n", cfg.Daemon.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Status API error: %v", err)
		}
	}()

	orch := simulation.New(log.New(os.Stdout, "sim ", log.LstdFlags))
	limiter := rate.NewLimiter(rate.Every(cfg.Daemon.TickInterval), 1)

	fmt.Printf("Ticking one simulated day every %s\n", cfg.Daemon.TickInterval)
	for {
		if err := limiter.Wait(ctx); err != nil {
			break
		}

		mu.Lock()
		_, err := orch.ProcessDaily(state)
		if err == nil {
			state.Date = state.Date.AddDate(0, 0, 1)
		}
		mu.Unlock()
		if err != nil {
			log.Printf("Tick error: %v", err)
			continue
		}

		if err := saves.Save(ctx, state, seed); err != nil {
			log.Printf("Save error: %v", err)
		}
		if len(state.EconomyHistory) > 0 {
			last := state.EconomyHistory[len(state.EconomyHistory)-1]
			if err := hist.AppendEconomy(ctx, last); err != nil {
				log.Printf("History error: %v", err)
			}
		}
		if len(state.ReputationHistory) > 0 {
			last := state.ReputationHistory[len(state.ReputationHistory)-1]
			if err := hist.AppendReputation(ctx, last); err != nil {
				log.Printf("History error: %v", err)
			}
		}
	}

	fmt.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Daemon.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Status API shutdown error: %v", err)
	}
	if err := saves.Save(shutdownCtx, state, seed); err != nil {
		return fmt.Errorf("final save failed: %w", err)
	}
	fmt.Println("Final save complete")
	return nil
}
