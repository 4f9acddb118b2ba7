package main

import (
	"github.com/adarshpandey515/etaverse-orders/internal/app"
	"github.com/adarshpandey515/etaverse-orders/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
