// Package confloader provides the configuration loading mechanism.
//
// It uses koanf to load settings from multiple sources and fsnotify to
// watch files for changes.
//
// Priority (highest to lowest):
//
//  1. Overrides, usually command-line flags
//  2. Environment variables (ENIGMA_SECTION_KEY)
//  3. Configuration file (YAML)
//  4. Default values already present in the target struct
package confloader
