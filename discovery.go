// FILE: lixenwraith/property/discovery.go
package property

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic properties file discovery
type FileDiscoveryOptions struct {
	// Base name of the properties file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths (searched before the defaults)
	Paths []string

	// CLI flag naming an explicit path (e.g., "--properties-file")
	CLIFlag string

	// Whether to search in current directory
	UseCurrentDir bool

	// Whether to search in $HOME/.<HomeDir>
	UseUserHome bool

	// Directory under $HOME, defaults to Name
	HomeDir string
}

// DefaultDiscoveryOptions returns the layout of a Gradle-style project
func DefaultDiscoveryOptions(name string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          name,
		Extensions:    []string{".properties", ".toml", ".yaml", ".yml", ".json"},
		CLIFlag:       "--properties-file",
		UseCurrentDir: true,
		UseUserHome:   true,
	}
}

// WithFileDiscovery enables automatic properties file discovery
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path, ok := discoverFile(opts, b.args); ok {
		b.file = path
	}
	// No file found is not an error - the build can run with CLI and defaults
	return b
}

func discoverFile(opts FileDiscoveryOptions, args []string) (string, bool) {
	// CLI args have the highest priority
	if opts.CLIFlag != "" {
		for i, arg := range args {
			if arg == opts.CLIFlag && i+1 < len(args) {
				return args[i+1], true
			}
			if strings.HasPrefix(arg, opts.CLIFlag+"=") {
				return strings.TrimPrefix(arg, opts.CLIFlag+"="), true
			}
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseUserHome {
		if home, err := os.UserHomeDir(); err == nil {
			dir := opts.HomeDir
			if dir == "" {
				dir = opts.Name
			}
			searchPaths = append(searchPaths, filepath.Join(home, "."+dir))
		}
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
	}

	return "", false
}
