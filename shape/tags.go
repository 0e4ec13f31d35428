package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// parseParamTag reads `param:"<name>[,<long>][,optional|required][,order=N]"`.
func parseParamTag(tag string) (Parameter, error) {
	name, long, attrs, err := splitNames(tag)
	if err != nil {
		return Parameter{}, err
	}

	p := Parameter{Name: name, LongName: long, Required: true}
	for _, attr := range attrs {
		switch {
		case attr == "optional":
			p.Required = false
		case attr == "required":
			p.Required = true
		case strings.HasPrefix(attr, "order="):
			n, err := strconv.Atoi(strings.TrimPrefix(attr, "order="))
			if err != nil {
				return Parameter{}, fmt.Errorf("invalid order in tag %q: %w", tag, err)
			}
			p.Order = n
		default:
			return Parameter{}, fmt.Errorf("unknown attribute %q in tag %q", attr, tag)
		}
	}
	return p, nil
}

// parseOptionTag reads `option:"<name>[,<long>]"`.
func parseOptionTag(tag string) (Option, error) {
	name, long, attrs, err := splitNames(tag)
	if err != nil {
		return Option{}, err
	}
	if len(attrs) > 0 {
		return Option{}, fmt.Errorf("unknown attribute %q in tag %q", attrs[0], tag)
	}
	return Option{Name: name, LongName: long}, nil
}

func splitNames(tag string) (name, long string, attrs []string, err error) {
	parts := strings.Split(tag, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	name = parts[0]
	if name == "" {
		return "", "", nil, fmt.Errorf("missing name in tag %q", tag)
	}
	long = name
	rest := parts[1:]
	if len(rest) > 0 && !isAttribute(rest[0]) {
		if rest[0] != "" {
			long = rest[0]
		}
		rest = rest[1:]
	}
	return name, long, rest, nil
}

func isAttribute(s string) bool {
	return s == "optional" || s == "required" || strings.Contains(s, "=")
}
