// Package web serves the two embedded browser pages. All real logic lives in
// the API; the pages only collect geolocation, call the API and poll.
package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "templates/*.html"))

// RequesterPage is the data for the scan-to-notify landing page.
type RequesterPage struct {
	SessionKey string
	CarTitle   string
	Phone      string
}

// OwnerPage is the data for the owner's confirmation page.
type OwnerPage struct {
	SessionKey string
	CarTitle   string
}

func RenderRequester(w io.Writer, data RequesterPage) error {
	return pages.ExecuteTemplate(w, "requester.html", data)
}

func RenderOwner(w io.Writer, data OwnerPage) error {
	return pages.ExecuteTemplate(w, "owner.html", data)
}
