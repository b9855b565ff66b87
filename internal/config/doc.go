// Package config loads the optional HCL settings file. Every setting is
// optional; a nil field means "not set in the file" so the CLI can layer
// flags over file values over defaults.
//
//	language   = "en"
//	log_level  = "info"
//	log_format = "json"
//
//	diagnostics {
//	  format = "yaml"
//	  color  = false
//	  width  = 100
//	}
//
//	checks {
//	  semantic = true
//	}
package config
