package main

import (
	"fpempleo_backend/internal/app"
	"fpempleo_backend/internal/logger"
)

func main() {
	a, err := app.New()
	if err != nil {
		logger.Fatal("failed to start application", "error", err.Error())
	}

	if err := a.Run(); err != nil {
		logger.Fatal("server terminated", "error", err.Error())
	}
}
