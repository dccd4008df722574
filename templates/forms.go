package templates

import (
	"net/url"
)

// Form carries submitted values and the errors found in them back to a page.
type Form struct {
	Values url.Values
	Errors map[string]string
	// Message is shown above the fields.
	Message string
}

func (f Form) Get(name string) string {
	return f.Values.Get(name)
}

const (
	multipart  = `multipart/form-data`
	urlencoded = `application/x-www-form-urlencoded`
)

func (h *html) formStart(action, enctype string) {
	h.raw(`<form method="post" action="`)
	h.href(action)
	h.raw(`" enctype="`, enctype, `">`)
}

func (h *html) message(f Form) {
	if f.Message != "" {
		h.raw(`<p class="error">`)
		h.text(f.Message)
		h.raw(`</p>`)
	}
}

func (h *html) fieldError(f Form, name string) {
	if msg, ok := f.Errors[name]; ok {
		h.raw(`<span class="error">`)
		h.text(msg)
		h.raw(`</span>`)
	}
}

func (h *html) input(f Form, label, name, kind string) {
	h.raw(`<p><label for="`, name, `">`)
	h.text(label)
	h.raw(`</label><input id="`, name, `" name="`, name, `" type="`, kind, `"`)
	if kind != "password" && kind != "file" {
		h.raw(` value="`)
		h.text(f.Get(name))
		h.raw(`"`)
	}
	h.raw(`>`)
	h.fieldError(f, name)
	h.raw(`</p>`)
}

func (h *html) textarea(f Form, label, name string) {
	h.raw(`<p><label for="`, name, `">`)
	h.text(label)
	h.raw(`</label><textarea id="`, name, `" name="`, name, `">`)
	h.text(f.Get(name))
	h.raw(`</textarea>`)
	h.fieldError(f, name)
	h.raw(`</p>`)
}

func (h *html) files(f Form, label, name, accept string, many bool) {
	h.raw(`<p><label for="`, name, `">`)
	h.text(label)
	h.raw(`</label><input id="`, name, `" name="`, name, `" type="file"`)
	if accept != "" {
		h.raw(` accept="`, accept, `"`)
	}
	if many {
		h.raw(` multiple`)
	}
	h.raw(`>`)
	h.fieldError(f, name)
	h.raw(`</p>`)
}

func (h *html) submit(label string) {
	h.raw(`<p><button type="submit">`)
	h.text(label)
	h.raw(`</button></p></form>`)
}
