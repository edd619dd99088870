package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fizanhabeeb/gracepos/config"
	"github.com/fizanhabeeb/gracepos/internal/app"
	"github.com/fizanhabeeb/gracepos/internal/webapi"
)

var (
	cfile    = flag.String("c", "gracepos.yml", "config file")
	initdb   = flag.Bool("initdb", false, "drop and recreate all tables")
	showVer  = flag.Bool("v", false, "print version and exit")
	gitCommit string
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("gracepos %s\n", gitCommit)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.DropAll()
		if err := application.MigrateDB(); err != nil {
			zap.S().Fatalf("initdb failed: %v", err)
		}
		zap.S().Info("database reinitialized")
		return
	}

	server := webapi.NewWebServer(cfg, application.Pos(), application.Backup())
	if err := server.Start(); err != nil {
		zap.S().Fatalf("webapi stopped: %v", err)
	}
}
