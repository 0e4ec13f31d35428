package cli

import (
	"github.com/footprint-tools/verbparse/internal/actions"
	configactions "github.com/footprint-tools/verbparse/internal/actions/config"
	"github.com/footprint-tools/verbparse/internal/actions/parse"
	"github.com/footprint-tools/verbparse/internal/actions/serve"
	"github.com/footprint-tools/verbparse/internal/actions/theme"
	"github.com/footprint-tools/verbparse/internal/app"
	"github.com/footprint-tools/verbparse/internal/dispatchers"
)

// BuildTree returns the verbparse command tree bound to a.
func BuildTree(a *app.Application) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "verbparse",
		Summary: "Parse verb commands into typed structs",
		Usage:   "verbparse [--help] [--config=<path>] <command> [<args>] [-- <line>]",
		Flags:   RootFlags,
		Pager:   a.Output.Pager,
	})

	addParseCommands(root, a)
	addServeCommands(root, a)
	addConfigCommands(root, a)
	addThemeCommands(root, a)

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show verbparse version",
		Usage:    "verbparse version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryInfo,
	})

	return root
}

func addParseCommands(root *dispatchers.DispatchNode, a *app.Application) {
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "parse",
		Parent:  root,
		Summary: "Parse a command line against the catalog commands",
		Description: `Parses one command line, or every line of stdin when none is given,
and prints the bound command. Put the line after -- so its words are
not read as verbparse flags:

   verbparse parse -- create :name foo :hidden

With --run the matched commands are executed against a catalog that
lives for the duration of the call, which is useful for scripts read
from stdin. Lines that do not match exit with code 2.`,
		Usage:    "verbparse parse [--run] [--shell] [-- <line>]",
		Flags:    ParseFlags,
		Args:     CommandLineArg,
		Action:   parse.Parse(a),
		Category: dispatchers.CategoryParse,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "tokenize",
		Parent:   root,
		Summary:  "Show how a command line is split into tokens",
		Usage:    "verbparse tokenize [--shell] -- <line>",
		Flags:    TokensFlags,
		Args:     TokenLineArg,
		Action:   parse.Tokens(a),
		Category: dispatchers.CategoryParse,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "shapes",
		Parent:   root,
		Summary:  "List the catalog commands and their arguments",
		Usage:    "verbparse shapes",
		Action:   parse.Shapes(a),
		Category: dispatchers.CategoryParse,
	})
}

func addServeCommands(root *dispatchers.DispatchNode, a *app.Application) {
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "serve",
		Parent:  root,
		Summary: "Answer catalog commands sent over socket.io",
		Description: `Connects to a socket.io server and answers every message on the
command event. A message is a string, or an object with a text field and
an optional id that is echoed in the reply.`,
		Usage:    "verbparse serve --url=<url> [--namespace=<nsp>] [--event=<name>] [--reply-event=<name>]",
		Flags:    ServeFlags,
		Action:   serve.Serve(a),
		Category: dispatchers.CategoryServe,
	})
}

func addConfigCommands(root *dispatchers.DispatchNode, a *app.Application) {
	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "verbparse config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Print a config value",
		Usage:    "verbparse config get <key>",
		Args:     ConfigKeyArg,
		Action:   configactions.Get(a.ConfigPath),
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "verbparse config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   configactions.Set(a.ConfigPath),
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "verbparse config unset [--all] <key>",
		Flags:    ConfigUnsetFlags,
		Args:     OptionalConfigKeyArg,
		Action:   configactions.Unset(a.ConfigPath),
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List every config key with its value",
		Usage:    "verbparse config list",
		Action:   configactions.List(a.ConfigPath),
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "path",
		Parent:   config,
		Summary:  "Print the config file location",
		Usage:    "verbparse config path",
		Action:   configactions.Path(a.ConfigPath),
		Category: dispatchers.CategoryConfig,
	})
}

func addThemeCommands(root *dispatchers.DispatchNode, a *app.Application) {
	themeNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "theme",
		Parent:  root,
		Summary: "Manage color themes",
		Usage:   "verbparse theme <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   themeNode,
		Summary:  "List available color themes",
		Usage:    "verbparse theme list",
		Action:   theme.List(a.ConfigPath),
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   themeNode,
		Summary:  "Set the color theme",
		Usage:    "verbparse theme set <name>",
		Args:     ThemeNameArg,
		Action:   theme.Set(a.ConfigPath),
		Category: dispatchers.CategoryConfig,
	})
}
