package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/ferreplus/internal/app"
	"github.com/ferreplus/internal/config"
	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("service exited: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "███████╗███████╗██████╗ ██████╗ ███████╗██████╗ ██╗     ██╗   ██╗███████╗" + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██╔════╝██╔══██╗██╔══██╗██╔════╝██╔══██╗██║     ██║   ██║██╔════╝" + ansiReset)
	fmt.Println(ansiCyan + "█████╗  █████╗  ██████╔╝██████╔╝█████╗  ██████╔╝██║     ██║   ██║███████╗" + ansiReset)
	fmt.Println(ansiCyan + "██╔══╝  ██╔══╝  ██╔══██╗██╔══██╗██╔══╝  ██╔═══╝ ██║     ██║   ██║╚════██║" + ansiReset)
	fmt.Println(ansiCyan + "██║     ███████╗██║  ██║██║  ██║███████╗██║     ███████╗╚██████╔╝███████║" + ansiReset)
	fmt.Println(ansiCyan + "╚═╝     ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝     ╚══════╝ ╚═════╝ ╚══════╝" + ansiReset)
	fmt.Println(ansiBold + "FerrePlus POS API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
