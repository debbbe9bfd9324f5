package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"

	"github.com/bookkeep/lending-service/library/app"
	"github.com/bookkeep/lending-service/library/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file loaded: ", err)
	}
	cfg := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
