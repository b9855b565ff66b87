package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/fscheck/internal/ctxlog"
)

// Load parses and decodes the settings file at path. Unknown attributes and
// blocks are rejected by the decoder.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	return decode(ctx, path, file)
}

// Parse decodes settings from in-memory HCL source. The filename is only
// used in error messages.
func Parse(ctx context.Context, filename string, src []byte) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}
	return decode(ctx, filename, file)
}

func decode(ctx context.Context, filename string, file *hcl.File) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)

	var settings Settings
	if diags := gohcl.DecodeBody(file.Body, nil, &settings); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", filename, diags)
	}

	logger.Debug("Settings file loaded.", "path", filename,
		"has_diagnostics_block", settings.Diagnostics != nil,
		"has_checks_block", settings.Checks != nil)
	return &settings, nil
}
