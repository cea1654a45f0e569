package page

import (
	"testing"

	"hr-dashboard/internal/config"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		action NavAction
		want   PageState
	}{
		{ActionNone, StateGraphs},
		{ActionClickHome, StateHome},
		{ActionClickAbout, StateAbout},
		{ActionClickContact, StateContact},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := Route(tt.action); got != tt.want {
				t.Errorf("Route(%d) = %q, want %q", tt.action, got, tt.want)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want NavAction
	}{
		{"", ActionNone},
		{"home", ActionClickHome},
		{"About", ActionClickAbout},
		{" contact ", ActionClickContact},
		{"graphs", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseAction(tt.in); got != tt.want {
				t.Errorf("ParseAction(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewStaticContentSkipsEmptyLinks(t *testing.T) {
	content := NewStaticContent(&config.Config{
		DashboardTitle:  "HR Dashboard",
		ContactEmail:    "hr@example.com",
		ContactLinkedIn: "https://linkedin.com",
		ContactGitHub:   "https://github.com/hr",
	})

	if len(content.Social) != 2 {
		t.Fatalf("Social = %v, want 2 links", content.Social)
	}
	if content.Social[0].Name != "LinkedIn" || content.Social[1].Name != "GitHub" {
		t.Errorf("Social = %v", content.Social)
	}
	if content.Title != "HR Dashboard" {
		t.Errorf("Title = %q", content.Title)
	}
}
