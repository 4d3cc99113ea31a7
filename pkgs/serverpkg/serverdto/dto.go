package serverdto

import (
	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/WangWilly/xGuild/pkgs/sidebar"
)

// ProgressData is the aggregate todo progress shown to moderators
type ProgressData struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

func NewProgressData(p model.Progress) *ProgressData {
	return &ProgressData{
		Total:     p.Total,
		Completed: p.Completed,
		Percent:   p.Percent(),
	}
}

// SidebarPage represents data for the sidebar template
type SidebarPage struct {
	Viewer   *model.Profile
	View     *sidebar.View
	Progress *ProgressData
}

// SidebarResponse represents the sidebar served as JSON
type SidebarResponse struct {
	*sidebar.View
	Progress *ProgressData `json:"progress"`
}

// HomePage represents data for the root page
type HomePage struct {
	Viewer  *model.Profile
	Servers []*model.Server
}

// ErrorResponse represents a JSON error body
type ErrorResponse struct {
	Error string `json:"error"`
}
