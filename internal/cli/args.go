package cli

import "github.com/footprint-tools/verbparse/internal/dispatchers"

var (
	CommandLineArg = []dispatchers.ArgSpec{
		{
			Name:        "line",
			Description: "Command line to parse, read from stdin line by line when omitted",
			Required:    false,
		},
	}

	TokenLineArg = []dispatchers.ArgSpec{
		{
			Name:        "line",
			Description: "Command line to tokenize",
			Required:    false,
		},
	}

	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	OptionalConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    false,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name (e.g., default, mono-dark, contrast-light)",
			Required:    true,
		},
	}
)
