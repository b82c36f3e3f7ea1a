package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/carta/internal/config"
	"github.com/smallbiznis/carta/internal/logger"
	"github.com/smallbiznis/carta/internal/migration"
	"github.com/smallbiznis/carta/internal/server"
	"github.com/smallbiznis/carta/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
