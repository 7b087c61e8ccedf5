package main

import (
	"trek/config"
	"trek/di"
	"trek/shared/logger"
)

// @title Trek API
// @version 1.0
// @description Tour booking platform API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
