package chatbot

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const defaultConnectTimeout = 15 * time.Second

// Config selects the socket.io server and the events the bot uses.
type Config struct {
	URL                string
	Namespace          string
	Event              string
	ReplyEvent         string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

func (c Config) withDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = "/"
	}
	if c.Event == "" {
		c.Event = "command"
	}
	if c.ReplyEvent == "" {
		c.ReplyEvent = "reply"
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	return c
}

// Serve connects to the server and answers every Event message on
// ReplyEvent until ctx is done.
func (b *Bot) Serve(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("failed to parse URL: %q needs a scheme and a host", cfg.URL)
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		opts.SetPath(parsedURL.Path)
	}
	if cfg.InsecureSkipVerify {
		b.logger.Warn("skipping TLS certificate verification for %s", cfg.URL)
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	connected := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		b.logger.Info("connected to %s%s", baseURL, cfg.Namespace)
		connected <- nil
	})
	io.Once(types.EventName("connect_error"), func(args ...any) {
		err := errors.New("connect error")
		if len(args) > 0 {
			if e, ok := args[0].(error); ok {
				err = e
			}
		}
		connected <- err
	})

	io.On(types.EventName(cfg.Event), func(args ...any) {
		msg, ok := decode(args)
		if !ok {
			b.logger.Warn("ignoring %s message with payload %v", cfg.Event, args)
			return
		}
		reply, err := b.Handle(msg.Text)
		if err != nil {
			b.logger.Error("%v", err)
		}
		io.Emit(cfg.ReplyEvent, msg.reply(reply))
	})

	io.Connect()
	defer io.Disconnect()

	select {
	case err := <-connected:
		if err != nil {
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(cfg.ConnectTimeout):
		return fmt.Errorf("timed out after %s waiting for socket.io connection", cfg.ConnectTimeout)
	}

	<-ctx.Done()
	b.logger.Info("disconnecting from %s", baseURL)
	return nil
}
