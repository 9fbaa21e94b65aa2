package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/habitgrid/internal/config"
	"github.com/habitgrid/internal/handler"
	appLog "github.com/habitgrid/internal/log"
	"github.com/habitgrid/internal/router"
	"github.com/habitgrid/internal/service"
)

func main() {
	if err := run(); err != nil {
		appLog.Error("server stopped", err)
		os.Exit(1)
	}
}

// run 返回后仓库已关闭，main 才能安全退出
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))
	gin.SetMode(cfg.GinMode)

	// 所有状态只存在于内存中，进程退出即丢失
	repo, closeRepo, err := service.OpenRepository(cfg.StoreBackend)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			appLog.Error("failed to close store", err)
		}
	}()

	api := handler.NewAPI(service.NewHabitService(repo), cfg.DefaultLanguage)
	r := router.SetupRouter(api, cfg.SessionSecret)

	appLog.Info("habitgrid listening", "addr", cfg.ListenAddr, "backend", cfg.StoreBackend)
	if err := r.Run(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}
