package menu

import (
	"github.com/smallbiznis/carta/internal/menu/service"
	"go.uber.org/fx"
)

var Module = fx.Module("menu.service",
	fx.Provide(service.New),
)
