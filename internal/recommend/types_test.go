// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyHybrid, false},
		{"hybrid", StrategyHybrid, false},
		{"content", StrategyContent, false},
		{"collaborative", StrategyCollaborative, false},
		{"  Content ", StrategyContent, false},
		{"COLLABORATIVE", StrategyCollaborative, false},
		{"popular", StrategyHybrid, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Errorf("error = %v, want ErrInvalidRequest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrategy_Names(t *testing.T) {
	tests := []struct {
		s           Strategy
		wire        string
		displayName string
	}{
		{StrategyHybrid, "hybrid", "Hybrid (Best)"},
		{StrategyContent, "content", "Content-Based"},
		{StrategyCollaborative, "collaborative", "Collaborative"},
		{Strategy(42), "unknown", "unknown"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.wire {
			t.Errorf("String() = %q, want %q", got, tt.wire)
		}
		if got := tt.s.DisplayName(); got != tt.displayName {
			t.Errorf("DisplayName() = %q, want %q", got, tt.displayName)
		}
	}

	if got := AllStrategies(); len(got) != 3 || got[0] != StrategyHybrid {
		t.Errorf("AllStrategies() = %v", got)
	}
}

func TestStrategy_JSON(t *testing.T) {
	type wrapper struct {
		Strategy Strategy `json:"strategy"`
	}

	data, err := json.Marshal(wrapper{Strategy: StrategyCollaborative})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"strategy":"collaborative"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"strategy":"content"}`), &w); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if w.Strategy != StrategyContent {
		t.Errorf("Unmarshal() strategy = %v, want content", w.Strategy)
	}

	if err := json.Unmarshal([]byte(`{"strategy":"bogus"}`), &w); err == nil {
		t.Error("Unmarshal() of unknown strategy should fail")
	}
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		n     int
		want  string
	}{
		{"shorter", "abc", 5, "abc"},
		{"equal", "abcde", 5, "abcde"},
		{"longer", "abcdef", 5, "abcde..."},
		{"runes", strings.Repeat("ü", 6), 5, strings.Repeat("ü", 5) + "..."},
		{"empty", "", 5, ""},
		{"negative", "ab", -1, "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateTitle(tt.title, tt.n); got != tt.want {
				t.Errorf("TruncateTitle(%q, %d) = %q, want %q", tt.title, tt.n, got, tt.want)
			}
		})
	}
}
