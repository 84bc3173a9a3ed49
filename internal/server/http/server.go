// Package httpserver exposes the platform's HTTP API over gin.
package httpserver

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nsplatform/backend/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	log      *zap.Logger
	auth     service.AuthService
	verif    service.VerificationService
	users    service.UserService
	goals    service.GoalService
	sessions service.SessionService
	signKey  []byte
}

// New constructs an HTTP server with injected services.
func New(log *zap.Logger, auth service.AuthService, verif service.VerificationService,
	users service.UserService, goals service.GoalService, sessions service.SessionService,
	signKey []byte) *Server {
	return &Server{
		log: log, auth: auth, verif: verif,
		users: users, goals: goals, sessions: sessions,
		signKey: signKey,
	}
}

// Router builds the route tree.
//
// The verification gate covers every authenticated route except an explicit
// allow-list; new handlers registered under the gated group are covered
// automatically. The admin group is exempt from the gate (staff only), which
// mirrors the exemption of admin entry points.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(Recovery(s.log), RequestLogger(s.log))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := r.Group("/api")

	// public
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)
	api.GET("/auth/verify/:token", s.verifyEmail)
	api.POST("/auth/resend-verification", s.resendVerification)

	// authenticated + verification gate
	authed := api.Group("")
	authed.Use(s.requireAuth())
	authed.Use(s.verifiedGate(map[string]struct{}{
		"/api/auth/logout": {},
	}))
	authed.POST("/auth/logout", s.logout)
	authed.GET("/profile", s.profile)

	authed.GET("/goals", s.listGoals)
	authed.POST("/goals", s.createGoal)
	authed.GET("/goals/:id", s.getGoal)
	authed.GET("/goal-types", s.goalTypes)
	authed.GET("/goal-result-types", s.goalResultTypes)

	authed.GET("/sessions", s.listSessions)
	authed.POST("/sessions", s.createSession)
	authed.GET("/sessions/:id", s.getSession)
	authed.POST("/sessions/:id/goals", s.addSessionGoal)
	authed.POST("/sessions/:id/participants", s.addParticipant)
	authed.GET("/sessions/:id/weights", s.listWeightHistory)
	authed.POST("/sessions/:id/weights", s.recordWeightChange)
	authed.GET("/session-types", s.sessionTypes)
	authed.GET("/session-statuses", s.sessionStatuses)

	// admin: staff only, exempt from the verification gate
	admin := api.Group("/admin")
	admin.Use(s.requireAuth(), s.requireStaff())
	admin.GET("/users", s.adminListUsers)
	admin.POST("/users/resend-verification", s.adminBulkResend)
	admin.GET("/goals", s.adminListGoals)
	admin.GET("/sessions", s.adminListSessions)
	admin.GET("/roles", s.adminListRoles)
	admin.DELETE("/roles/:id", s.adminDeleteRole)

	return r
}
