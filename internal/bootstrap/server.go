package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shawn910604/taipei-day-trip/api"
	"github.com/shawn910604/taipei-day-trip/config"
	"github.com/shawn910604/taipei-day-trip/internal/service/booking"
	"github.com/shawn910604/taipei-day-trip/internal/service/member"
	"github.com/shawn910604/taipei-day-trip/internal/service/order"
	"github.com/shawn910604/taipei-day-trip/internal/service/trip"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	tokens api.TokenValidator,
	tripSvc trip.TripUseCase,
	memberSvc member.MemberUseCase,
	bookingSvc booking.BookingUseCase,
	orderSvc order.OrderUseCase,
) error {
	router := newRouter(cfg, tokens, tripSvc, memberSvc, bookingSvc, orderSvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(
	cfg *config.Config,
	tokens api.TokenValidator,
	tripSvc trip.TripUseCase,
	memberSvc member.MemberUseCase,
	bookingSvc booking.BookingUseCase,
	orderSvc order.OrderUseCase,
) *gin.Engine {
	router := gin.Default()

	apiGroup := router.Group("/api")
	api.NewAttractionHandler(tripSvc).Register(apiGroup)
	api.NewUserHandler(memberSvc, tokens).Register(apiGroup)
	api.NewBookingHandler(bookingSvc, tokens).Register(apiGroup)
	api.NewOrderHandler(orderSvc, tokens).Register(apiGroup)

	if cfg.HTTP.StaticDir != "" {
		registerStaticPages(router, cfg.HTTP.StaticDir)
	}

	return router
}

// registerStaticPages serves the single-page frontend. Each page route
// returns its HTML shell; the client-side scripts call /api.
func registerStaticPages(router *gin.Engine, staticDir string) {
	router.Static("/static", staticDir)

	page := func(name string) gin.HandlerFunc {
		path := filepath.Join(staticDir, name)
		return func(c *gin.Context) { c.File(path) }
	}

	router.GET("/", page("index.html"))
	router.GET("/attraction/:id", page("attraction.html"))
	router.GET("/booking", page("booking.html"))
	router.GET("/thankyou", page("thankyou.html"))
}
