package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/verbparse/internal/ui/style"
	"github.com/footprint-tools/verbparse/result"
)

// Handler executes matched catalog commands against a registry and renders
// a one-message reply.
type Handler struct {
	Registry *Registry
	Styler   style.Stylist
	now      func() time.Time
}

// NewHandler returns a Handler over reg. A nil st means plain text.
func NewHandler(reg *Registry, st style.Stylist) *Handler {
	if st == nil {
		st = style.NopStyler{}
	}
	return &Handler{Registry: reg, Styler: st, now: time.Now}
}

// Handle consumes o and returns the reply. A Matched outcome whose command
// fails in the registry returns that error; an Unmatched outcome renders its
// errors as the reply and returns no error.
func (h *Handler) Handle(o result.Outcome[any]) (string, error) {
	var (
		reply string
		err   error
	)
	st := h.Styler

	o = result.WhenMatchedAs(o, func(cmd *CreatePackage) {
		var pkg Package
		if pkg, err = h.Registry.Create(cmd); err == nil {
			reply = st.Success("created") + " " + DescribePackage(pkg, st)
		}
	})
	o = result.WhenMatchedAs(o, func(cmd *DeletePackage) {
		var pkg Package
		if pkg, err = h.Registry.Delete(cmd); err == nil {
			reply = st.Success("deleted") + " " + DescribePackage(pkg, st)
		}
	})
	o = result.WhenMatchedAs(o, func(cmd *TagPackage) {
		var pkg Package
		if pkg, err = h.Registry.Tag(cmd); err == nil {
			reply = st.Success("tagged") + " " + DescribePackage(pkg, st)
		}
	})
	o = result.WhenMatchedAs(o, func(cmd *ListPackages) {
		pkgs := h.Registry.List(cmd)
		if len(pkgs) == 0 {
			reply = st.Muted("no packages")
			return
		}
		lines := make([]string, len(pkgs))
		for i, p := range pkgs {
			lines[i] = DescribePackage(p, st)
		}
		reply = strings.Join(lines, "\n")
	})
	o = result.WhenMatchedAs(o, func(cmd *Ping) {
		reply = fmt.Sprintf("pong %s", h.now().Add(cmd.Delay).UTC().Format(time.RFC3339))
	})
	o = o.WhenMatched(func(v any) {
		reply = Describe(v, st)
	})
	o.WhenUnmatched(func(errs []result.Error) {
		reply = DescribeErrors(errs, st)
	})

	if err != nil {
		return "", err
	}
	return reply, nil
}
