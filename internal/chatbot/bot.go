// Package chatbot answers chat messages that carry catalog commands.
package chatbot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/verbparse/internal/catalog"
	"github.com/footprint-tools/verbparse/internal/log"
	"github.com/footprint-tools/verbparse/parser"
	"github.com/footprint-tools/verbparse/shape"
)

// Bot turns one message into one reply. It is safe for concurrent use.
type Bot struct {
	parser  *parser.Parser
	handler *catalog.Handler
	shapes  []*shape.Shape
	logger  log.Leveled
}

// New returns a bot answering the catalog commands. A nil logger discards.
func New(p *parser.Parser, h *catalog.Handler, logger log.Leveled) *Bot {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Bot{
		parser:  p,
		handler: h,
		shapes:  catalog.Shapes(),
		logger:  logger,
	}
}

// Handle parses line and executes it. Input that does not match any command
// is answered with the reasons. Registry errors become an error reply. Only
// parser faults are returned as errors, with a reply naming the fault id.
func (b *Bot) Handle(line string) (string, error) {
	line = strings.TrimSpace(line)

	outcome, err := b.parser.ParseAny(line, b.shapes...)
	if err != nil {
		var fault *parser.Fault
		if errors.As(err, &fault) {
			return fmt.Sprintf("internal error %s", fault.ID), err
		}
		return "internal error", err
	}

	reply, err := b.handler.Handle(outcome)
	if err != nil {
		b.logger.Info("command %q failed: %v", line, err)
		return "error: " + err.Error(), nil
	}
	return reply, nil
}
