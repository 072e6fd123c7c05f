package main

import (
	"powervoting/internal/toolkit/handler"
	"powervoting/internal/toolkit/service"
	"powervoting/internal/toolkit/validator"
	"powervoting/pkg/app"
	"powervoting/pkg/config"
)

const ServiceName = "toolkit"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Toolkit service")
	toolkitService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewToolkitHandler(toolkitService, cfg.Log),
		handler.NewHealthHandler(cfg.Contracts, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.ToolkitService {
	toolkitValidator := validator.NewToolkitValidator(cfg.Log)
	toolkitService := service.NewToolkitService(toolkitValidator, cfg)

	cfg.Log.Info("Toolkit service initialized", "contract_addresses", cfg.Contracts.Len())
	return toolkitService
}
