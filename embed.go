// embed.go - embedded resource declarations.
// Must live at the repository root (next to assets/ and data/) because
// //go:embed can only reference files under the declaring package's directory.
package main

import "embed"

//go:embed assets/config
var assetsFS embed.FS

//go:embed data/classes.yaml
var dataFS embed.FS
