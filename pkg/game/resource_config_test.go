package game

import "testing"

// TestResourceGroupFileCount verifies per-group file counting.
func TestResourceGroupFileCount(t *testing.T) {
	tests := []struct {
		name     string
		group    ResourceGroup
		expected int
	}{
		{"empty", ResourceGroup{}, 0},
		{"images only", ResourceGroup{Images: []ImageResource{{ID: "A"}, {ID: "B"}}}, 2},
		{"fonts only", ResourceGroup{Fonts: []FontResource{{ID: "F"}}}, 1},
		{
			"mixed",
			ResourceGroup{
				Images: []ImageResource{{ID: "A"}, {ID: "B"}, {ID: "C"}},
				Fonts:  []FontResource{{ID: "F"}, {ID: "G"}},
			},
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.group.FileCount(); got != tt.expected {
				t.Errorf("FileCount() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// TestBuildFullPath verifies base path joining.
func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		relative string
		expected string
	}{
		{"normal join", "assets", "images/a.png", "assets/images/a.png"},
		{"empty base", "", "images/a.png", "images/a.png"},
		{"leading slash", "assets", "/images/a.png", "assets/images/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildFullPath(tt.base, tt.relative); got != tt.expected {
				t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.relative, got, tt.expected)
			}
		})
	}
}

// TestResourceMapLookup verifies the manifest builds the ID lookup table.
func TestResourceMapLookup(t *testing.T) {
	rm := writeManifest(t, testManifest)

	path, ok := rm.resourceMap["IMAGE_A"]
	if !ok {
		t.Fatal("IMAGE_A missing from resource map")
	}
	if path != "assets/images/a.png" {
		t.Errorf("IMAGE_A path = %q, want assets/images/a.png", path)
	}

	if _, ok := rm.resourceMap["IMAGE_Z"]; ok {
		t.Error("unknown ID present in resource map")
	}
}
