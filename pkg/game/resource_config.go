package game

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of related resources loaded together, one
// group per screen.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // Image resources in this group
	Fonts  []FontResource  `yaml:"fonts"`  // Font resources in this group
}

// ImageResource is a single image definition.
//
// Example:
//
//	- id: IMAGE_CLASS_KNIGHT
//	  path: images/class_knight.png
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// FontResource is a single font definition.
//
// Example:
//
//	- id: FONT_BODY
//	  path: fonts/body.ttf
type FontResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// FileCount returns the number of individual files in the group. The loading
// screen uses it to derive per-file progress.
func (g ResourceGroup) FileCount() int {
	return len(g.Images) + len(g.Fonts)
}

// buildFullPath joins the manifest base path with a resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
