package page

import (
	"strings"

	"hr-dashboard/internal/config"
)

type NavAction int

const (
	ActionNone NavAction = iota
	ActionClickHome
	ActionClickAbout
	ActionClickContact
)

type PageState string

const (
	StateGraphs  PageState = "Graphs"
	StateHome    PageState = "Home"
	StateAbout   PageState = "About"
	StateContact PageState = "Contact"
)

// Route maps the navigation action of the current request to the page state.
// Nothing is remembered between requests.
func Route(action NavAction) PageState {
	switch action {
	case ActionClickHome:
		return StateHome
	case ActionClickAbout:
		return StateAbout
	case ActionClickContact:
		return StateContact
	default:
		return StateGraphs
	}
}

// ParseAction reads the nav query value.
func ParseAction(s string) NavAction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return ActionClickHome
	case "about":
		return ActionClickAbout
	case "contact":
		return ActionClickContact
	default:
		return ActionNone
	}
}

type Link struct {
	Name string
	URL  string
}

// StaticContent holds the text of the Home, About and Contact blocks.
type StaticContent struct {
	Title       string
	HomeHeading string
	HomeBody    string

	AboutName      string
	AboutInstitute string
	AboutProgram   string
	AboutReference string

	ContactBody  string
	ContactEmail string
	ContactPhone string
	Social       []Link
}

func NewStaticContent(cfg *config.Config) *StaticContent {
	content := &StaticContent{
		Title:          cfg.DashboardTitle,
		HomeHeading:    "Welcome to the HR Dashboard",
		HomeBody:       "This dashboard provides insights into HR data through various visualizations.",
		AboutName:      cfg.AboutName,
		AboutInstitute: cfg.AboutInstitute,
		AboutProgram:   cfg.AboutProgram,
		AboutReference: cfg.AboutReference,
		ContactBody:    "For more information, please reach out via email or phone.",
		ContactEmail:   cfg.ContactEmail,
		ContactPhone:   cfg.ContactPhone,
	}

	for _, l := range []Link{
		{"YouTube", cfg.ContactYouTube},
		{"Instagram", cfg.ContactInstagram},
		{"LinkedIn", cfg.ContactLinkedIn},
		{"GitHub", cfg.ContactGitHub},
	} {
		if l.URL != "" {
			content.Social = append(content.Social, l)
		}
	}
	return content
}
