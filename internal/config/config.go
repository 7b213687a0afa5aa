package config

import "os"

const DefaultBaseDir = "~/.studytracker"

// BaseDir returns the data directory from the STUDYTRACKER_HOME env var,
// falling back to DefaultBaseDir.
func BaseDir() string {
	if env := os.Getenv("STUDYTRACKER_HOME"); env != "" {
		return env
	}
	return DefaultBaseDir
}
