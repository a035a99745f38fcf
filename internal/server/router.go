package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

  "github.com/squaredcircle/promoter-backend/internal/handlers"
  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/middleware"
)

type RouterConfig struct {
  Log             *logger.Logger
  WrestlerHandler *handlers.WrestlerHandler
  ManagerHandler  *handlers.ManagerHandler
  RefereeHandler  *handlers.RefereeHandler
  TagTeamHandler  *handlers.TagTeamHandler
  StableHandler   *handlers.StableHandler
  TitleHandler    *handlers.TitleHandler
  VenueHandler    *handlers.VenueHandler
  EventHandler    *handlers.EventHandler
  MatchHandler    *handlers.MatchHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.New()
  router.Use(gin.Recovery())
  router.Use(middleware.RequestID())
  router.Use(middleware.RequestLog(cfg.Log))
  router.Use(otelgin.Middleware("promoter-backend"))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

// ===============
// || API       ||
// ===============
  api := router.Group("/api")
  {
    // Wrestlers
    api.GET("/wrestlers", cfg.WrestlerHandler.List)
    api.POST("/wrestlers", cfg.WrestlerHandler.Create)
    api.GET("/wrestlers/:id", cfg.WrestlerHandler.Get)
    api.PATCH("/wrestlers/:id", cfg.WrestlerHandler.Update)
    api.DELETE("/wrestlers/:id", cfg.WrestlerHandler.Archive)
    api.POST("/wrestlers/:id/restore", cfg.WrestlerHandler.Restore)
    api.POST("/wrestlers/:id/employ", cfg.WrestlerHandler.Employ)
    api.POST("/wrestlers/:id/release", cfg.WrestlerHandler.Release)
    api.POST("/wrestlers/:id/injure", cfg.WrestlerHandler.Injure)
    api.POST("/wrestlers/:id/clear-from-injury", cfg.WrestlerHandler.ClearFromInjury)
    api.POST("/wrestlers/:id/suspend", cfg.WrestlerHandler.Suspend)
    api.POST("/wrestlers/:id/reinstate", cfg.WrestlerHandler.Reinstate)
    api.POST("/wrestlers/:id/retire", cfg.WrestlerHandler.Retire)
    api.POST("/wrestlers/:id/unretire", cfg.WrestlerHandler.Unretire)

    // Managers
    api.GET("/managers", cfg.ManagerHandler.List)
    api.POST("/managers", cfg.ManagerHandler.Create)
    api.GET("/managers/:id", cfg.ManagerHandler.Get)
    api.PATCH("/managers/:id", cfg.ManagerHandler.Update)
    api.DELETE("/managers/:id", cfg.ManagerHandler.Archive)
    api.POST("/managers/:id/restore", cfg.ManagerHandler.Restore)
    api.GET("/managers/:id/clients", cfg.ManagerHandler.Clients)
    api.POST("/managers/:id/clients", cfg.ManagerHandler.HireClient)
    api.DELETE("/managers/:id/clients", cfg.ManagerHandler.DropClient)
    api.POST("/managers/:id/employ", cfg.ManagerHandler.Employ)
    api.POST("/managers/:id/release", cfg.ManagerHandler.Release)
    api.POST("/managers/:id/injure", cfg.ManagerHandler.Injure)
    api.POST("/managers/:id/clear-from-injury", cfg.ManagerHandler.ClearFromInjury)
    api.POST("/managers/:id/suspend", cfg.ManagerHandler.Suspend)
    api.POST("/managers/:id/reinstate", cfg.ManagerHandler.Reinstate)
    api.POST("/managers/:id/retire", cfg.ManagerHandler.Retire)
    api.POST("/managers/:id/unretire", cfg.ManagerHandler.Unretire)

    // Referees
    api.GET("/referees", cfg.RefereeHandler.List)
    api.POST("/referees", cfg.RefereeHandler.Create)
    api.GET("/referees/:id", cfg.RefereeHandler.Get)
    api.PATCH("/referees/:id", cfg.RefereeHandler.Update)
    api.DELETE("/referees/:id", cfg.RefereeHandler.Archive)
    api.POST("/referees/:id/restore", cfg.RefereeHandler.Restore)
    api.POST("/referees/:id/employ", cfg.RefereeHandler.Employ)
    api.POST("/referees/:id/release", cfg.RefereeHandler.Release)
    api.POST("/referees/:id/injure", cfg.RefereeHandler.Injure)
    api.POST("/referees/:id/clear-from-injury", cfg.RefereeHandler.ClearFromInjury)
    api.POST("/referees/:id/suspend", cfg.RefereeHandler.Suspend)
    api.POST("/referees/:id/reinstate", cfg.RefereeHandler.Reinstate)
    api.POST("/referees/:id/retire", cfg.RefereeHandler.Retire)
    api.POST("/referees/:id/unretire", cfg.RefereeHandler.Unretire)

    // Tag Teams
    api.GET("/tag-teams", cfg.TagTeamHandler.List)
    api.POST("/tag-teams", cfg.TagTeamHandler.Create)
    api.GET("/tag-teams/:id", cfg.TagTeamHandler.Get)
    api.PATCH("/tag-teams/:id", cfg.TagTeamHandler.Update)
    api.DELETE("/tag-teams/:id", cfg.TagTeamHandler.Archive)
    api.POST("/tag-teams/:id/restore", cfg.TagTeamHandler.Restore)
    api.POST("/tag-teams/:id/partners", cfg.TagTeamHandler.AddPartner)
    api.DELETE("/tag-teams/:id/partners", cfg.TagTeamHandler.RemovePartner)
    api.POST("/tag-teams/:id/employ", cfg.TagTeamHandler.Employ)
    api.POST("/tag-teams/:id/release", cfg.TagTeamHandler.Release)
    api.POST("/tag-teams/:id/suspend", cfg.TagTeamHandler.Suspend)
    api.POST("/tag-teams/:id/reinstate", cfg.TagTeamHandler.Reinstate)
    api.POST("/tag-teams/:id/retire", cfg.TagTeamHandler.Retire)
    api.POST("/tag-teams/:id/unretire", cfg.TagTeamHandler.Unretire)

    // Stables
    api.GET("/stables", cfg.StableHandler.List)
    api.POST("/stables", cfg.StableHandler.Create)
    api.GET("/stables/:id", cfg.StableHandler.Get)
    api.PATCH("/stables/:id", cfg.StableHandler.Update)
    api.DELETE("/stables/:id", cfg.StableHandler.Archive)
    api.POST("/stables/:id/restore", cfg.StableHandler.Restore)
    api.POST("/stables/:id/members", cfg.StableHandler.AddMember)
    api.DELETE("/stables/:id/members", cfg.StableHandler.RemoveMember)
    api.POST("/stables/:id/establish", cfg.StableHandler.Establish)
    api.POST("/stables/:id/disband", cfg.StableHandler.Disband)
    api.POST("/stables/:id/retire", cfg.StableHandler.Retire)
    api.POST("/stables/:id/unretire", cfg.StableHandler.Unretire)

    // Titles
    api.GET("/titles", cfg.TitleHandler.List)
    api.POST("/titles", cfg.TitleHandler.Create)
    api.GET("/titles/:id", cfg.TitleHandler.Get)
    api.PATCH("/titles/:id", cfg.TitleHandler.Update)
    api.DELETE("/titles/:id", cfg.TitleHandler.Archive)
    api.POST("/titles/:id/restore", cfg.TitleHandler.Restore)
    api.POST("/titles/:id/debut", cfg.TitleHandler.Debut)
    api.POST("/titles/:id/pull", cfg.TitleHandler.Pull)
    api.POST("/titles/:id/retire", cfg.TitleHandler.Retire)
    api.POST("/titles/:id/unretire", cfg.TitleHandler.Unretire)
    api.POST("/titles/:id/award", cfg.TitleHandler.Award)
    api.GET("/titles/:id/lineage", cfg.TitleHandler.Lineage)

    // Venues
    api.GET("/venues", cfg.VenueHandler.List)
    api.POST("/venues", cfg.VenueHandler.Create)
    api.GET("/venues/:id", cfg.VenueHandler.Get)
    api.PATCH("/venues/:id", cfg.VenueHandler.Update)
    api.DELETE("/venues/:id", cfg.VenueHandler.Archive)
    api.POST("/venues/:id/restore", cfg.VenueHandler.Restore)

    // Events
    api.GET("/events", cfg.EventHandler.List)
    api.GET("/events/upcoming", cfg.EventHandler.Upcoming)
    api.POST("/events", cfg.EventHandler.Create)
    api.GET("/events/:id", cfg.EventHandler.Get)
    api.PATCH("/events/:id", cfg.EventHandler.Update)
    api.DELETE("/events/:id", cfg.EventHandler.Archive)
    api.POST("/events/:id/restore", cfg.EventHandler.Restore)
    api.POST("/events/:id/schedule", cfg.EventHandler.Schedule)
    api.POST("/events/:id/unschedule", cfg.EventHandler.Unschedule)

    // Matches
    api.GET("/events/:id/matches", cfg.MatchHandler.ListCard)
    api.POST("/events/:id/matches", cfg.MatchHandler.Book)
    api.GET("/matches/:id", cfg.MatchHandler.Get)
    api.POST("/matches/:id/result", cfg.MatchHandler.RecordResult)
    api.DELETE("/matches/:id", cfg.MatchHandler.Unbook)
  }

  return router
}
