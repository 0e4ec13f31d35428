package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/footprint-tools/verbparse/internal/app"
	"github.com/footprint-tools/verbparse/internal/catalog"
	"github.com/footprint-tools/verbparse/internal/chatbot"
)

type Deps struct {
	Serve   func(context.Context, chatbot.Config) error
	Context func() (context.Context, context.CancelFunc)
	Printf  func(string, ...any) (int, error)
}

func DefaultDeps(a *app.Application) Deps {
	bot := chatbot.New(a.Parser, catalog.NewHandler(a.Registry, a.Styler), a.Logger)

	return Deps{
		Serve: bot.Serve,
		Context: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		},
		Printf: a.Output.Printf,
	}
}
