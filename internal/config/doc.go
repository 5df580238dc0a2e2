// Package config loads listviz settings from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/listviz/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or zero, use defaults
//
// # TOML Format
//
//	insert_highlight_ms = 1500
//	delete_delay_ms = 1000
//	search_highlight_ms = 2000
//	overlap_policy = "cancel"   # cancel, flush or overlap
//	log_file = "~/.local/state/listviz/listviz.log"
//	log_level = "info"
//
// Every field is optional. Logging stays off until log_file is set, since
// the terminal belongs to the interface. Tilde expansion is performed on
// log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Negative delays and unknown overlap policies
//
// Missing config files are NOT an error.
package config
