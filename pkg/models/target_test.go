package models_test

import (
	"encoding/json"
	"testing"

	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

func TestTargetUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want models.Target
	}{
		{"String line", `{"target": "25.5"}`, "25.5"},
		{"Milestone string", `{"target": "3+"}`, "3+"},
		{"Bare number", `{"target": 25.5}`, "25.5"},
		{"Integer number", `{"target": 3}`, "3"},
		{"Null", `{"target": null}`, ""},
		{"Absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var leg struct {
				Target models.Target `json:"target"`
			}
			if err := json.Unmarshal([]byte(tt.json), &leg); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if leg.Target != tt.want {
				t.Errorf("target = %q, want %q", leg.Target, tt.want)
			}
		})
	}
}

func TestTargetIsMilestone(t *testing.T) {
	tests := []struct {
		target models.Target
		want   bool
	}{
		{"3+", true},
		{"10+ ", true},
		{"25.5", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.target.IsMilestone(); got != tt.want {
			t.Errorf("Target(%q).IsMilestone() = %v, want %v", tt.target, got, tt.want)
		}
	}
}
