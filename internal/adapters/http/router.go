package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmaki/rewarddining/internal/adapters/config"
	"github.com/lmaki/rewarddining/internal/adapters/http/controllers"
	"github.com/lmaki/rewarddining/internal/adapters/http/middleware"
)

type Router struct {
	healthController     *controllers.HealthController
	accountController    *controllers.AccountController
	restaurantController *controllers.RestaurantController
	rewardController     *controllers.RewardController
	rateLimiter          middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	accountController *controllers.AccountController,
	restaurantController *controllers.RestaurantController,
	rewardController *controllers.RewardController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:     healthController,
		accountController:    accountController,
		restaurantController: restaurantController,
		rewardController:     rewardController,
		rateLimiter:          rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.GET("/accounts", r.accountController.GetAllAccounts)
		v1Group.POST("/accounts", r.accountController.CreateAccount)
		v1Group.GET("/accounts/:id", r.accountController.GetAccountByID)
		v1Group.PUT("/accounts/:id", r.accountController.UpdateAccount)

		v1Group.POST("/accounts/:id/beneficiaries", r.accountController.AddBeneficiary)
		v1Group.PATCH("/accounts/:id/beneficiaries", r.accountController.UpdateAllocations)
		v1Group.DELETE("/accounts/:id/beneficiaries/:name", r.accountController.RemoveBeneficiary)

		v1Group.POST("/accounts/:id/contributions", middleware.RateLimit(rl, 20, 1*time.Minute), r.accountController.MakeContribution)

		v1Group.GET("/restaurants/:merchantNumber", r.restaurantController.GetByMerchantNumber)

		v1Group.POST("/rewards", middleware.RateLimit(rl, 30, 1*time.Minute), r.rewardController.RewardAccountFor)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
