package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"viralagent/auth"
	"viralagent/types"
)

// Runner executes one automation cycle. Satisfied by the orchestrator.
type Runner interface {
	Run(ctx context.Context) (*types.RunSummary, error)
}

// NewRouter assembles the HTTP surface: health, the automation trigger, and
// the OAuth endpoints.
func NewRouter(runner Runner, store auth.VerifierStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	RegisterHealthRoutes(router)
	RegisterAutomationRoutes(router, runner)
	RegisterAuthRoutes(router, store)

	return router
}
