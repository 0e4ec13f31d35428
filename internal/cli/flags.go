package cli

import "github.com/footprint-tools/verbparse/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--config"},
			ValueHint:   "<path>",
			Description: "Read configuration from path instead of ~/.verbparserc",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	ParseFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--run"},
			Description: "Execute matched commands against an in-memory catalog",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--shell"},
			Description: "Split words with shell rules (backslash escapes, quotes inside words)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	TokensFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--shell"},
			Description: "Split words with shell rules (backslash escapes, quotes inside words)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ServeFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--url"},
			ValueHint:   "<url>",
			Description: "socket.io server URL, e.g. http://localhost:3000",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--namespace"},
			ValueHint:   "<nsp>",
			Description: "socket.io namespace (default /)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--event"},
			ValueHint:   "<name>",
			Description: "Event carrying commands (default command)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--reply-event"},
			ValueHint:   "<name>",
			Description: "Event used for replies (default reply)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--insecure"},
			Description: "Skip TLS certificate verification",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--timeout"},
			ValueHint:   "<duration>",
			Description: "How long to wait for the connection (default 15s)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)

// ValueFlags lists the flags that take a value. Their value may follow as
// the next argument instead of after '='.
var ValueFlags = valueFlags(RootFlags, ServeFlags)

func valueFlags(groups ...[]dispatchers.FlagDescriptor) map[string]bool {
	out := make(map[string]bool)
	for _, group := range groups {
		for _, f := range group {
			if f.ValueHint == "" {
				continue
			}
			for _, name := range f.Names {
				out[name] = true
			}
		}
	}
	return out
}
