package site

import (
	"embed"

	"github.com/bornholm/scaffold/internal/ui"
)

//go:embed templates/**
var templateFs embed.FS

// PageTemplateData contains the data needed to render a site page
type PageTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	Page Page
}

func newHeadTemplateData(page Page) ui.HeadTemplateData {
	return ui.HeadTemplateData{
		PageTitle: page.Title,
	}
}
