package nlp

import (
	"testing"

	"github.com/bgdnvk/archlens/internal/catalog"
)

func TestExtractServices(t *testing.T) {
	ex := NewExtractor(catalog.New())

	tests := []struct {
		name     string
		text     string
		expected map[string]float64
	}{
		{
			name: "explicit service names",
			text: "Build a serverless web application with Lambda and S3",
			expected: map[string]float64{
				"Lambda": 0.95,
				"S3":     0.95,
			},
		},
		{
			name: "keyword only match",
			text: "We need a relational database for orders",
			expected: map[string]float64{
				"RDS": 0.8,
			},
		},
		{
			name: "mixed name and keyword",
			text: "Store files in a bucket and cache sessions in redis",
			expected: map[string]float64{
				"S3":          0.8,
				"ElastiCache": 0.8,
			},
		},
		{
			name:     "no services",
			text:     "We want something nice",
			expected: map[string]float64{},
		},
		{
			name:     "empty text",
			text:     "",
			expected: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := ex.Extract(tt.text)

			if len(entities.Services) != len(tt.expected) {
				names := make([]string, 0, len(entities.Services))
				for _, s := range entities.Services {
					names = append(names, s.Name)
				}
				t.Fatalf("Extract(%q) found services %v, want %d", tt.text, names, len(tt.expected))
			}
			for _, s := range entities.Services {
				want, ok := tt.expected[s.Name]
				if !ok {
					t.Errorf("Extract(%q) found unexpected service %s", tt.text, s.Name)
					continue
				}
				if s.Confidence != want {
					t.Errorf("service %s confidence = %v, want %v", s.Name, s.Confidence, want)
				}
			}
		})
	}
}

func TestExtractServices_LambdaAlwaysDetected(t *testing.T) {
	// Any text containing "lambda" must yield a Lambda mention with
	// confidence at least 0.8.
	ex := NewExtractor(catalog.New())

	texts := []string{
		"lambda",
		"use lambda for image resizing",
		"Lambda functions triggered by S3 uploads",
		"we considered lambda but are not sure",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			entities := ex.Extract(text)
			found := false
			for _, s := range entities.Services {
				if s.Name == "Lambda" {
					found = true
					if s.Confidence < 0.8 {
						t.Errorf("Lambda confidence = %v, want >= 0.8", s.Confidence)
					}
				}
			}
			if !found {
				t.Errorf("Extract(%q) did not detect Lambda", text)
			}
		})
	}
}

func TestExtractServices_DeduplicatedByName(t *testing.T) {
	ex := NewExtractor(catalog.New())

	entities := ex.Extract("lambda lambda lambda everywhere, lambda functions calling lambda")

	count := 0
	for _, s := range entities.Services {
		if s.Name == "Lambda" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Lambda mentioned %d times, want exactly 1", count)
	}
}

func TestExtractComponents(t *testing.T) {
	ex := NewExtractor(catalog.New())

	tests := []struct {
		name      string
		text      string
		wantTypes map[string]bool
	}{
		{
			name:      "frontend and database",
			text:      "a frontend talking to a database",
			wantTypes: map[string]bool{"user-interface": true, "data-storage": true},
		},
		{
			name:      "api and queue",
			text:      "the api pushes jobs onto a queue",
			wantTypes: map[string]bool{"service": true, "messaging": true},
		},
		{
			name:      "authentication",
			text:      "users login through sso",
			wantTypes: map[string]bool{"authentication": true},
		},
		{
			name:      "nothing generic",
			text:      "just some computation",
			wantTypes: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := ex.Extract(tt.text)
			got := make(map[string]bool)
			for _, c := range entities.Components {
				got[c.Type] = true
				if c.Confidence != 0.8 {
					t.Errorf("component %q confidence = %v, want 0.8", c.Name, c.Confidence)
				}
			}
			for typ := range tt.wantTypes {
				if !got[typ] {
					t.Errorf("Extract(%q) missing component type %s, got %v", tt.text, typ, got)
				}
			}
			for typ := range got {
				if !tt.wantTypes[typ] {
					t.Errorf("Extract(%q) found unexpected component type %s", tt.text, typ)
				}
			}
		})
	}
}

func TestExtractComponents_DedupedByMatchedText(t *testing.T) {
	ex := NewExtractor(catalog.New())

	// "database" twice is one mention; "database" and "data store" are two.
	entities := ex.Extract("a database here, a database there, plus a data store")

	var names []string
	for _, c := range entities.Components {
		if c.Type == "data-storage" {
			names = append(names, c.Name)
		}
	}
	if len(names) != 2 {
		t.Errorf("data-storage mentions = %v, want [database, data store]", names)
	}
}

func TestExtractRelationships(t *testing.T) {
	ex := NewExtractor(catalog.New())

	tests := []struct {
		name     string
		text     string
		wantType string
	}{
		{"uses", "the frontend uses the api", "uses"},
		{"stores", "the api stores orders in the database", "stores-in"},
		{"reads", "the worker reads messages from the queue", "reads-from"},
		{"sends", "the api sends events to the bus", "sends-to"},
		{"receives", "the consumer receives records from kinesis", "receives-from"},
		{"depends", "billing depends on the ledger", "depends-on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := ex.Extract(tt.text)
			found := false
			for _, r := range entities.Relationships {
				if r.Type == tt.wantType {
					found = true
					if r.Confidence != 0.7 {
						t.Errorf("relationship confidence = %v, want 0.7", r.Confidence)
					}
				}
			}
			if !found {
				t.Errorf("Extract(%q) missing relationship %s", tt.text, tt.wantType)
			}
		})
	}
}

func TestExtractRequirements(t *testing.T) {
	ex := NewExtractor(catalog.New())

	tests := []struct {
		name      string
		text      string
		wantType  string
		wantValue string
	}{
		{"availability", "needs high availability across regions", "availability", "high-availability"},
		{"performance", "low latency responses are required", "performance", "low-latency"},
		{"scalability", "must scale with traffic", "scalability", "scalable"},
		{"security", "all data must be encrypted", "security", "secure"},
		{"cost", "keep it cost-effective", "cost", "cost-effective"},
		{"reliability", "the pipeline must be reliable", "reliability", "reliable"},
		{"monitoring", "we need monitoring and alerting", "monitoring", "monitored"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := ex.Extract(tt.text)
			found := false
			for _, r := range entities.Requirements {
				if r.Type == tt.wantType {
					found = true
					if r.Value != tt.wantValue {
						t.Errorf("requirement value = %q, want %q", r.Value, tt.wantValue)
					}
					if r.Confidence != 0.8 {
						t.Errorf("requirement confidence = %v, want 0.8", r.Confidence)
					}
				}
			}
			if !found {
				t.Errorf("Extract(%q) missing requirement %s", tt.text, tt.wantType)
			}
		})
	}
}

func TestExtract_EmptyTextYieldsEmptyLists(t *testing.T) {
	ex := NewExtractor(catalog.New())
	entities := ex.Extract("")

	if len(entities.Services) != 0 || len(entities.Components) != 0 ||
		len(entities.Relationships) != 0 || len(entities.Requirements) != 0 {
		t.Errorf("Extract(\"\") = %+v, want all empty lists", entities)
	}
	if entities.Services == nil || entities.Components == nil ||
		entities.Relationships == nil || entities.Requirements == nil {
		t.Error("Extract(\"\") returned nil slices, want empty slices")
	}
}
