package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"movecar-service/internal/config"
	"movecar-service/internal/handler"
	"movecar-service/internal/movecar"
	"movecar-service/internal/push"
	"movecar-service/internal/session"
)

func setupHTTP(_ context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	store := session.NewStore(infra.KV)
	limiter := session.NewRateLimiter(store)
	resolver := config.NewResolver(config.EnvSource{})

	dispatcher := push.NewDispatcher(
		resolver,
		&http.Client{Timeout: cfg.ChannelTimeout},
		log.Logger,
	)

	svc := movecar.NewService(store, limiter, dispatcher, resolver, log.Logger)

	h := handler.New(svc, resolver, log.Logger)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.RegisterRoutes(router)

	return router, func() error {
		return infra.KV.Close()
	}, nil
}
