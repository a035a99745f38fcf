package main

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "os"
  "os/signal"
  "syscall"
  "time"

  "golang.org/x/sync/errgroup"

  "github.com/squaredcircle/promoter-backend/internal/db"
  "github.com/squaredcircle/promoter-backend/internal/handlers"
  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/observability"
  "github.com/squaredcircle/promoter-backend/internal/realtime"
  "github.com/squaredcircle/promoter-backend/internal/repos"
  "github.com/squaredcircle/promoter-backend/internal/seed"
  "github.com/squaredcircle/promoter-backend/internal/server"
  "github.com/squaredcircle/promoter-backend/internal/services"
  "github.com/squaredcircle/promoter-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
  defer stop()

  // Tracing
  otelShutdown := observability.InitTracing(ctx, log, observability.TracingConfig{
    ServiceName: utils.GetEnv("SERVICE_NAME", "promoter-backend", log),
    Environment: utils.GetEnv("ENVIRONMENT", "development", log),
    Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
  })

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if utils.GetEnvAsBool("POSTGRES_AUTO_MIGRATE", true, log) {
    if err = postgresService.AutoMigrateAll(); err != nil {
      log.Error("Postgres auto migration failed", "error", err)
      os.Exit(1)
    }
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  wrestlerRepo := repos.NewWrestlerRepo(thePG, log)
  managerRepo := repos.NewManagerRepo(thePG, log)
  managementRepo := repos.NewManagementRepo(thePG, log)
  refereeRepo := repos.NewRefereeRepo(thePG, log)
  tagTeamRepo := repos.NewTagTeamRepo(thePG, log)
  tagTeamPartnerRepo := repos.NewTagTeamPartnerRepo(thePG, log)
  stableRepo := repos.NewStableRepo(thePG, log)
  stableMemberRepo := repos.NewStableMemberRepo(thePG, log)
  titleRepo := repos.NewTitleRepo(thePG, log)
  championshipRepo := repos.NewChampionshipRepo(thePG, log)
  venueRepo := repos.NewVenueRepo(thePG, log)
  eventRepo := repos.NewEventRepo(thePG, log)
  matchRepo := repos.NewMatchRepo(thePG, log)
  employmentRepo := repos.NewEmploymentRepo(thePG, log)
  injuryRepo := repos.NewInjuryRepo(thePG, log)
  suspensionRepo := repos.NewSuspensionRepo(thePG, log)
  retirementRepo := repos.NewRetirementRepo(thePG, log)
  activationRepo := repos.NewActivationRepo(thePG, log)

  // Roster event bus
  log.Info("Setting up roster event bus now...")
  bus, err := realtime.NewBus(log)
  if err != nil {
    log.Error("Could not init roster event bus", "error", err)
    os.Exit(1)
  }
  if err := bus.StartForwarder(ctx, func(ev realtime.RosterEvent) {
    log.Info("Roster transition", "kind", ev.Kind, "entity_id", ev.EntityID, "transition", ev.Transition, "effective_at", ev.EffectiveAt)
  }); err != nil {
    log.Warn("Roster event forwarder unavailable", "error", err)
  }

  // Services
  log.Info("Setting up Services from main...")
  avatarService, err := services.NewAvatarService(log)
  if err != nil {
    log.Warn("Could not init AvatarService, continuing without avatars", "error", err)
    avatarService = nil
  }
  statusService := services.NewStatusService(
    log,
    employmentRepo,
    injuryRepo,
    suspensionRepo,
    retirementRepo,
    activationRepo,
    tagTeamPartnerRepo,
    stableMemberRepo,
    championshipRepo,
  )
  wrestlerService := services.NewWrestlerService(thePG, log, wrestlerRepo, statusService, employmentRepo, injuryRepo, suspensionRepo, retirementRepo, avatarService, bus)
  managerService := services.NewManagerService(thePG, log, managerRepo, managementRepo, statusService, employmentRepo, injuryRepo, suspensionRepo, retirementRepo, avatarService, bus)
  refereeService := services.NewRefereeService(thePG, log, refereeRepo, statusService, employmentRepo, injuryRepo, suspensionRepo, retirementRepo, avatarService, bus)
  tagTeamService := services.NewTagTeamService(thePG, log, tagTeamRepo, tagTeamPartnerRepo, wrestlerRepo, statusService, employmentRepo, suspensionRepo, retirementRepo, bus)
  stableService := services.NewStableService(thePG, log, stableRepo, stableMemberRepo, wrestlerRepo, tagTeamRepo, statusService, activationRepo, employmentRepo, injuryRepo, suspensionRepo, retirementRepo, bus)
  titleService := services.NewTitleService(thePG, log, titleRepo, championshipRepo, statusService, activationRepo, retirementRepo, bus)
  championshipService := services.NewChampionshipService(thePG, log, titleRepo, championshipRepo, statusService)
  venueService := services.NewVenueService(thePG, log, venueRepo)
  eventService := services.NewEventService(thePG, log, eventRepo, venueRepo)
  matchService := services.NewMatchService(thePG, log, matchRepo, eventRepo, refereeRepo, statusService, championshipService)

  // Seed
  if seedFile := utils.GetEnv("SEED_FILE", "", log); seedFile != "" {
    seeder := seed.NewSeeder(log, wrestlerService, managerService, refereeService, tagTeamService, titleService, venueService)
    if err := seeder.Apply(ctx, seedFile); err != nil {
      log.Error("Seed failed", "error", err)
      os.Exit(1)
    }
  }

  // Handlers
  log.Info("Setting up handlers from main...")
  wrestlerHandler := handlers.NewWrestlerHandler(log, wrestlerService)
  managerHandler := handlers.NewManagerHandler(log, managerService)
  refereeHandler := handlers.NewRefereeHandler(log, refereeService)
  tagTeamHandler := handlers.NewTagTeamHandler(log, tagTeamService)
  stableHandler := handlers.NewStableHandler(log, stableService)
  titleHandler := handlers.NewTitleHandler(log, titleService, championshipService)
  venueHandler := handlers.NewVenueHandler(log, venueService)
  eventHandler := handlers.NewEventHandler(log, eventService)
  matchHandler := handlers.NewMatchHandler(log, matchService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    Log:             log,
    WrestlerHandler: wrestlerHandler,
    ManagerHandler:  managerHandler,
    RefereeHandler:  refereeHandler,
    TagTeamHandler:  tagTeamHandler,
    StableHandler:   stableHandler,
    TitleHandler:    titleHandler,
    VenueHandler:    venueHandler,
    EventHandler:    eventHandler,
    MatchHandler:    matchHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  srv := &http.Server{
    Addr:    ":" + port,
    Handler: router,
  }

  g, gCtx := errgroup.WithContext(ctx)
  g.Go(func() error {
    log.Info("Server listening", "port", port)
    if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
      return err
    }
    return nil
  })
  shutdownTimeout := time.Duration(utils.GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10, log)) * time.Second
  g.Go(func() error {
    <-gCtx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
    defer cancel()
    if otelShutdown != nil {
      _ = otelShutdown(shutdownCtx)
    }
    _ = bus.Close()
    return srv.Shutdown(shutdownCtx)
  })
  if err := g.Wait(); err != nil {
    log.Error("Server failed", "error", err)
    os.Exit(1)
  }
}
