// Package embedded provides unified access to resources compiled into the binary.
//
// Go's embed directive can only reference files under the declaring package's
// directory, so the embed.FS variables are declared at the repository root
// (embed.go). This package wraps them so every other package can read the
// embedded manifests without importing main.
//
// Init must be called before any other function in this package.
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"embed"
)

var (
	assetsFS    embed.FS
	dataFS      embed.FS
	initialized bool
)

// Init installs the embed.FS variables declared at the repository root.
// It must be called at the start of main(), before any resource loading.
func Init(assets, data embed.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// ReadFile reads a file from the embedded filesystems.
// The path must start with "assets/" or "data/"; the prefix selects the FS.
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path = normalize(path)

	switch {
	case strings.HasPrefix(path, "assets/"):
		return fs.ReadFile(assetsFS, path)
	case strings.HasPrefix(path, "data/"):
		return fs.ReadFile(dataFS, path)
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Exists reports whether a file is present in the embedded filesystems.
func Exists(path string) bool {
	if !initialized {
		return false
	}

	path = normalize(path)

	var err error
	switch {
	case strings.HasPrefix(path, "assets/"):
		_, err = fs.Stat(assetsFS, path)
	case strings.HasPrefix(path, "data/"):
		_, err = fs.Stat(dataFS, path)
	default:
		return false
	}
	return err == nil
}

// normalize converts a path to the forward-slash form embed.FS expects
// and strips a leading "./".
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}
