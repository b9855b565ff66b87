package config

// Settings is the decoded content of a settings file.
type Settings struct {
	Language    *string           `hcl:"language,optional"`
	LogLevel    *string           `hcl:"log_level,optional"`
	LogFormat   *string           `hcl:"log_format,optional"`
	Diagnostics *DiagnosticsBlock `hcl:"diagnostics,block"`
	Checks      *ChecksBlock      `hcl:"checks,block"`
}

// DiagnosticsBlock configures how diagnostics are rendered.
type DiagnosticsBlock struct {
	Format *string `hcl:"format,optional"`
	Color  *bool   `hcl:"color,optional"`
	Width  *int    `hcl:"width,optional"`
}

// ChecksBlock toggles engine passes.
type ChecksBlock struct {
	Semantic *bool `hcl:"semantic,optional"`
}
