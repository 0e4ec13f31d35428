package serve

import (
	"github.com/footprint-tools/verbparse/internal/app"
	"github.com/footprint-tools/verbparse/internal/chatbot"
	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/usage"
)

// Serve returns the command answering chat commands over socket.io until
// interrupted.
func Serve(a *app.Application) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return serve(args, flags, DefaultDeps(a))
	}
}

func serve(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	cfg := configFromFlags(flags)
	if cfg.URL == "" {
		return usage.MissingArgument("--url")
	}

	ctx, cancel := deps.Context()
	defer cancel()

	_, _ = deps.Printf("serving commands from %s (Ctrl-C to stop)\n", cfg.URL)

	err := deps.Serve(ctx, cfg)
	if err != nil && ctx.Err() != nil {
		// Interrupted while connecting.
		return nil
	}
	return err
}

func configFromFlags(flags *dispatchers.ParsedFlags) chatbot.Config {
	return chatbot.Config{
		URL:                flags.String("--url", ""),
		Namespace:          flags.String("--namespace", ""),
		Event:              flags.String("--event", ""),
		ReplyEvent:         flags.String("--reply-event", ""),
		InsecureSkipVerify: flags.Has("--insecure"),
		ConnectTimeout:     flags.Duration("--timeout", 0),
	}
}
