package server

import (
	"embed"
	"html/template"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("").
		Funcs(createTemplateFunctions()).
		ParseFS(templateFS, "templates/*.html")
}

// createTemplateFunctions returns a map of template functions for use in HTML templates
func createTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"roleName": func(role *model.MemberRole) string {
			if role == nil {
				return ""
			}
			return role.String()
		},
		"initial": func(name string) string {
			for _, r := range name {
				return string(r)
			}
			return "?"
		},
	}
}
