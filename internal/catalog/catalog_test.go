package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupService(t *testing.T) {
	c := New()

	tests := []struct {
		name         string
		wantCategory string
		wantFound    bool
	}{
		{"Lambda", "compute", true},
		{"S3", "storage", true},
		{"DynamoDB", "database", true},
		{"IAM", "security", true},
		{"NotAService", "", false},
		{"lambda", "", false}, // lookup is exact, not case-folded
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, found := c.LookupService(tt.name)
			if found != tt.wantFound {
				t.Fatalf("LookupService(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
			if found && entry.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", entry.Category, tt.wantCategory)
			}
		})
	}
}

func TestServicesByCategory(t *testing.T) {
	c := New()
	grouped := c.ServicesByCategory()

	for _, category := range []string{"compute", "storage", "database", "networking", "security"} {
		group, ok := grouped[category]
		if !ok {
			t.Errorf("no group for category %q", category)
			continue
		}
		if len(group.Services) == 0 {
			t.Errorf("category %q has no services", category)
		}
		for _, s := range group.Services {
			if s.Category != category {
				t.Errorf("service %s in group %q has category %q", s.Name, category, s.Category)
			}
		}
	}
}

func TestServicesReturnsCopy(t *testing.T) {
	c := New()

	first := c.Services()
	if len(first) == 0 {
		t.Fatal("no built-in services")
	}
	original := first[0].Name
	first[0].Name = "mutated"

	second := c.Services()
	if second[0].Name != original {
		t.Error("mutating a returned slice changed the catalog")
	}
}

func TestKeywordsAreLowercase(t *testing.T) {
	c := New()

	// Matching lowercases the input text, so a keyword with uppercase
	// letters could never fire.
	for _, s := range c.Services() {
		for _, kw := range s.Keywords {
			for _, r := range kw {
				if r >= 'A' && r <= 'Z' {
					t.Errorf("service %s has keyword %q with uppercase letters", s.Name, kw)
				}
			}
		}
	}
}

func TestCategories(t *testing.T) {
	c := New()
	cats := c.Categories()

	if len(cats) < 5 {
		t.Fatalf("categories = %d, want at least 5", len(cats))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1] >= cats[i] {
			t.Errorf("categories not sorted: %q before %q", cats[i-1], cats[i])
		}
	}
}

func TestNewWithOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	content := `services:
  - name: Lambda
    category: compute
    keywords: ["custom-keyword"]
  - name: InternalQueue
    category: integration
    keywords: ["internal queue"]
patterns:
  - name: internal pipeline
    category: data
    description: in-house processing pipeline
    services: ["InternalQueue"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := NewWithOverlay(path)
	if err != nil {
		t.Fatalf("NewWithOverlay: %v", err)
	}

	// Existing entries are replaced in place.
	lambda, found := c.LookupService("Lambda")
	if !found {
		t.Fatal("Lambda missing after overlay")
	}
	if len(lambda.Keywords) != 1 || lambda.Keywords[0] != "custom-keyword" {
		t.Errorf("overlay did not replace Lambda keywords: %v", lambda.Keywords)
	}

	// New entries are appended.
	if _, found := c.LookupService("InternalQueue"); !found {
		t.Error("overlay service InternalQueue not added")
	}

	foundPattern := false
	for _, p := range c.Patterns() {
		if p.Name == "internal pipeline" {
			foundPattern = true
		}
	}
	if !foundPattern {
		t.Error("overlay pattern not added")
	}

	// The base catalog never sees the overlay.
	base, _ := New().LookupService("Lambda")
	if len(base.Keywords) == 1 && base.Keywords[0] == "custom-keyword" {
		t.Error("overlay leaked into the built-in catalog")
	}
}

func TestNewWithOverlay_Errors(t *testing.T) {
	if _, err := NewWithOverlay(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing overlay file should return an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("services: [not: valid: yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWithOverlay(bad); err == nil {
		t.Error("malformed overlay should return an error")
	}
}
