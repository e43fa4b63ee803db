package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eventdesk/eventdesk/internal/api"
	"github.com/eventdesk/eventdesk/internal/config"
	"github.com/eventdesk/eventdesk/internal/logger"
	"github.com/eventdesk/eventdesk/internal/storage"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	store, err := storage.Open(conf.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}
	defer store.Close()

	s, err := api.NewServer(conf, store)
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
