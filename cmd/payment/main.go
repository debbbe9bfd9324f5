package main

import (
	stdLog "log"

	"github.com/joho/godotenv"

	"github.com/bookkeep/lending-service/payment/app"
	"github.com/bookkeep/lending-service/payment/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file loaded: ", err)
	}

	app.Run(config.NewConfig())
}
