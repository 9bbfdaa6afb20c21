package main

import (
	"fmt"
	"runtime"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/shadowbane/nautic/cmd/api/router"
	"github.com/shadowbane/weather-alert/pkg/exithandler"
	"github.com/shadowbane/weather-alert/pkg/server"
	"go.uber.org/zap"

	"github.com/shadowbane/nautic/pkg/application"
)

func main() {
	var cpuCount = runtime.NumCPU()
	if cpuCount > 1 {
		runtime.GOMAXPROCS(cpuCount)
	}

	// load .env
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
		fmt.Println("Please ensure you load correct environment variables")
	}

	app, err := application.Start()
	if err != nil {
		zap.S().Fatal(err.Error())
	}

	srv := server.
		Get().
		WithAddr(app.Cfg.GetAPIPort()).
		WithRouter(router.Api(app)).
		WithErrLogger(zap.S())

	// periodic forecast sync
	app.StartBackgroundJobs()

	go func() {
		zap.S().Info("starting api server at ", app.Cfg.GetAPIPort())

		if err := srv.Start(); err != nil {
			zap.S().Warn(err.Error())
		}
	}()

	exithandler.Init(func() {
		zap.S().Info("Closing Application")
		zap.S().Info("Waiting for all the processes to finish")

		app.StopBackgroundJobs()

		if err := srv.Close(); err != nil {
			zap.S().Error(err.Error())
		}

		if err := app.Close(); err != nil {
			zap.S().Errorf("Failed to close database: %v", err)
		}

		zap.S().Info("Application Closed")
		_ = zap.L().Sync()
	})

	zap.S().Info("Bye!")
}
