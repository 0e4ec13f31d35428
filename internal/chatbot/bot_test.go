package chatbot

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbparse/internal/catalog"
	"github.com/footprint-tools/verbparse/parser"
	"github.com/footprint-tools/verbparse/settings"
	"github.com/footprint-tools/verbparse/token"
)

func newBot(opts ...parser.Option) *Bot {
	return New(parser.New(opts...), catalog.NewHandler(catalog.NewRegistry(), nil), nil)
}

func TestBot_Handle(t *testing.T) {
	bot := newBot()

	steps := []struct {
		line string
		want string
	}{
		{line: "create :n foo :t beta", want: "created foo [beta]"},
		{line: "  list  ", want: "foo [beta]"},
		{line: "create :n foo", want: "error: package already exists: foo"},
		{line: "", want: "BrokenInput: input is empty"},
		{line: "remove :n foo", want: `TypeResolutionFailed: no shape for verb "remove"`},
		{line: "delete :n foo", want: "deleted foo [beta]"},
	}

	for _, step := range steps {
		reply, err := bot.Handle(step.line)
		require.NoError(t, err, step.line)
		require.Equal(t, step.want, reply, step.line)
	}
}

func TestBot_HandleChatPrefix(t *testing.T) {
	bot := newBot(parser.WithSettings(settings.Settings{
		VerbPrefix:               "!",
		ArgumentKeyPrefix:        "--",
		KeyValueDelimiter:        '=',
		RequireArgumentKeyPrefix: true,
	}))

	reply, err := bot.Handle(`!create --name="my package" --hidden`)
	require.NoError(t, err)
	require.Equal(t, "created my package (hidden)", reply)

	reply, err = bot.Handle("create --name=x")
	require.NoError(t, err)
	require.Contains(t, reply, "BrokenInput")
}

type panickingTokenizer struct{}

func (panickingTokenizer) Tokenize(string, settings.Settings) (token.Command, error) {
	panic("tokenizer exploded")
}

func TestBot_HandleFault(t *testing.T) {
	bot := newBot(parser.WithTokenizer(panickingTokenizer{}))

	reply, err := bot.Handle("list")

	var fault *parser.Fault
	require.True(t, errors.As(err, &fault))
	require.Equal(t, "internal error "+fault.ID.String(), reply)
}

func TestBot_HandleConcurrent(t *testing.T) {
	bot := newBot()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply, err := bot.Handle("create :n pkg" + strings.Repeat("x", i))
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(reply, "created pkg"), reply)
		}()
	}
	wg.Wait()

	reply, err := bot.Handle("list :l 100")
	require.NoError(t, err)
	require.Len(t, strings.Split(reply, "\n"), 20)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		args   []any
		want   message
		wantOK bool
	}{
		{name: "no payload", args: nil},
		{name: "string", args: []any{"list"}, want: message{Text: "list"}, wantOK: true},
		{name: "object", args: []any{map[string]any{"text": "list", "id": 7.0}}, want: message{Text: "list", ID: 7.0}, wantOK: true},
		{name: "object without text", args: []any{map[string]any{"id": 7.0}}},
		{name: "number", args: []any{42.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decode(tt.args)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMessageReply(t *testing.T) {
	require.Equal(t, "pong", message{Text: "ping"}.reply("pong"))
	require.Equal(t,
		map[string]any{"id": "a1", "text": "pong"},
		message{Text: "ping", ID: "a1"}.reply("pong"))
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{URL: "http://localhost:3000"}.withDefaults()
	require.Equal(t, "/", cfg.Namespace)
	require.Equal(t, "command", cfg.Event)
	require.Equal(t, "reply", cfg.ReplyEvent)
	require.Equal(t, defaultConnectTimeout, cfg.ConnectTimeout)
}

func TestServe_RejectsBadURL(t *testing.T) {
	bot := newBot()
	for _, u := range []string{"://nope", "localhost"} {
		err := bot.Serve(t.Context(), Config{URL: u})
		require.ErrorContains(t, err, "failed to parse URL", u)
	}
}
