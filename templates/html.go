package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html writes markup to w, remembering the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// href writes a URL for use inside an attribute. Unsafe schemes are replaced.
func (h *html) href(s string) {
	h.text(string(templ.URL(s)))
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(f func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		f(ctx, h)
		return h.err
	})
}

func (h *html) link(url, label string) {
	h.raw(`<a href="`)
	h.href(url)
	h.raw(`">`)
	h.text(label)
	h.raw(`</a>`)
}
