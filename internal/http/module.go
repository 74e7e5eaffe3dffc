package http

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"http",
		fx.Provide(NewHandler, NewRouter, NewServer),
		fx.Invoke(registerServer),
	)
}
