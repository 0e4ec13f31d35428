package parse

import (
	"io"
	"os"

	"github.com/footprint-tools/verbparse/internal/app"
	"github.com/footprint-tools/verbparse/internal/catalog"
	"github.com/footprint-tools/verbparse/internal/ui/style"
	"github.com/footprint-tools/verbparse/parser"
	"github.com/footprint-tools/verbparse/shape"
	"github.com/footprint-tools/verbparse/token"
)

type Deps struct {
	// Parser returns the parser to use; shell selects shell word splitting.
	Parser  func(shell bool) *parser.Parser
	Shapes  []*shape.Shape
	Handler *catalog.Handler
	Styler  style.Stylist
	Stdin   io.Reader
	Printf  func(string, ...any) (int, error)
}

func DefaultDeps(a *app.Application) Deps {
	return Deps{
		Parser: func(shell bool) *parser.Parser {
			if !shell {
				return a.Parser
			}
			return parser.New(
				parser.WithSettings(a.Settings),
				parser.WithLogger(a.Logger),
				parser.WithTokenizer(token.ShellTokenizer{}),
			)
		},
		Shapes:  catalog.Shapes(),
		Handler: catalog.NewHandler(a.Registry, a.Styler),
		Styler:  a.Styler,
		Stdin:   os.Stdin,
		Printf:  a.Output.Printf,
	}
}
