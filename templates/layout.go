package templates

import (
	"context"
	"net/url"

	"github.com/a-h/templ"
)

type Place int

const (
	PlaceHome Place = iota
	Auth
	PlaceSignup
	PlaceProfile
	PlaceBlog
	Read
	Edit
	History
	PlaceError
)

type PageData struct {
	Authenticated bool
	Username      string
	ProfilePath   string
	PageTitle     string
	Place         Place
	Path          *url.URL
	// Hrefs holds the tabs shown above the content, keyed by the place they lead to.
	Hrefs map[Place]string
	Child templ.Component
	Err   error
}

var tabs = []struct {
	place Place
	label string
}{
	{Read, "Read"},
	{Edit, "Edit"},
	{History, "History"},
}

func Layout(data PageData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(data.PageTitle)
		h.raw(`</title><link rel="stylesheet" href="/static/style.css"></head><body><header><nav>`)
		h.link("/", "Home")
		if data.Authenticated {
			h.raw(` `)
			h.link(data.ProfilePath, data.Username)
			h.raw(` `)
			h.link("/logout/", "Log out")
		} else {
			next := ""
			if data.Path != nil && data.Place != Auth && data.Place != PlaceSignup {
				next = "?next=" + url.QueryEscape(data.Path.RequestURI())
			}
			h.raw(` `)
			h.link("/login/"+next, "Log in")
			h.raw(` `)
			h.link("/register/", "Register")
		}
		h.raw(`</nav>`)

		if len(data.Hrefs) > 0 {
			h.raw(`<ul class="tabs">`)
			for _, t := range tabs {
				href, ok := data.Hrefs[t.place]
				if !ok {
					continue
				}
				if t.place == data.Place {
					h.raw(`<li class="current">`)
				} else {
					h.raw(`<li>`)
				}
				h.link(href, t.label)
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</header><main>`)

		if data.Err != nil {
			h.raw(`<p class="error">`)
			h.text(data.Err.Error())
			h.raw(`</p>`)
		}
		h.component(ctx, data.Child)
		h.raw(`</main></body></html>`)
	})
}
