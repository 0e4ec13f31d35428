package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// loadHCL reads top-level attributes of an HCL file as strings. Booleans and
// numbers are converted, so `require_argument_key_prefix = false` works.
func loadHCL(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %w", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read attributes: %w", diags)
	}

	cfg := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		var value string
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &value); diags.HasErrors() {
			return nil, fmt.Errorf("attribute %s: %w", name, diags)
		}
		cfg[name] = value
	}
	return cfg, nil
}
