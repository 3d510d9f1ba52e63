package main

import (
	"context"

	"casaflow/internal/configuration"
	"casaflow/internal/core"
	"casaflow/internal/database"

	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	db := database.InitDB(config.Database)
	cache := core.NewCache(config.Cache)
	notify := core.NewNotifier(config.Notifier)
	activityLogger := core.NewActivityLogger(config.Activity)
	eventsChannel := core.NewEventsChannel()

	core.CreateAdminUser(db, config)

	core.StartWorkers(context.Background(), config, db, eventsChannel, notify)

	core.StartHTTPServer(config, db, cache, activityLogger, eventsChannel)
}
