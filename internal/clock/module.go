package clock

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"clock",
		fx.Provide(
			NewSystem,
			fx.Annotate(NewUUIDGenerator, fx.As(new(IDGenerator))),
		),
	)
}
