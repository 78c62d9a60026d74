// Package config provides configuration management for notionaudit.
//
// Configuration is assembled from three sources, in increasing priority:
// the YAML configuration file, the NOTION_TOKEN environment variable (for
// the credential only), and CLI flags. The assembled Config is passed
// through the application via dependency injection; no component reads
// ambient process state at scan time.
package config
