package main

import (
	appfx "github.com/Perod122/SinkIt/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
