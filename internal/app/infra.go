package app

import (
	"github.com/rs/zerolog/log"

	"movecar-service/internal/config"
	"movecar-service/internal/kv"
)

type Infra struct {
	KV *kv.Redis
}

func setupInfra(cfg config.Config) (*Infra, error) {
	store, err := kv.Dial(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("redis ready")

	return &Infra{KV: store}, nil
}
