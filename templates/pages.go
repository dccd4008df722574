package templates

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/sidereusnuntius/blogs/internal/csvimport"
	"github.com/sidereusnuntius/blogs/internal/domain"
)

const dateLayout = "2006-01-02 15:04"

func (h *html) date(t time.Time) {
	h.raw(`<time datetime="`, t.UTC().Format(time.RFC3339), `">`)
	h.text(t.Local().Format(dateLayout))
	h.raw(`</time>`)
}

func (h *html) articleList(articles []domain.Article, showBlog bool) {
	if len(articles) == 0 {
		h.raw(`<p>No articles yet.</p>`)
		return
	}
	h.raw(`<ul class="articles">`)
	for _, a := range articles {
		h.raw(`<li><h3>`)
		h.link(a.Path(), a.Title)
		h.raw(`</h3><p>`)
		h.text(a.ShortContent())
		h.raw(`</p><small>`)
		if showBlog {
			h.link(domain.BlogPath(a.Owner, a.BlogID), a.BlogTitle)
			h.raw(` by `)
			h.link(domain.ProfilePath(a.Owner), a.Owner)
			h.raw(`, `)
		}
		h.date(a.Created)
		h.raw(`, attachments: `, strconv.Itoa(a.AttachmentsCount), `</small></li>`)
	}
	h.raw(`</ul>`)
}

func Home(articles []domain.Article) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>Latest articles</h1>`)
		h.articleList(articles, true)
	})
}

func Login(action, next string, form Form) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>Log in</h1>`)
		h.message(form)
		h.formStart(action, urlencoded)
		h.raw(`<input type="hidden" name="next" value="`)
		h.text(next)
		h.raw(`">`)
		h.input(form, "Username", "username", "text")
		h.input(form, "Password", "password", "password")
		h.submit("Log in")
		h.raw(`<p>No account? `)
		h.link("/register/", "Register")
		h.raw(`</p>`)
	})
}

func SignUp(action string, form Form) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>Register</h1>`)
		h.message(form)
		h.formStart(action, urlencoded)
		h.input(form, "Username", "username", "text")
		h.input(form, "First name", "first_name", "text")
		h.input(form, "Last name", "last_name", "text")
		h.input(form, "Email", "email", "email")
		h.input(form, "Phone", "phone", "text")
		h.input(form, "City", "city", "text")
		h.input(form, "Password", "password1", "password")
		h.input(form, "Password confirmation", "password2", "password")
		h.submit("Register")
	})
}

func LoggedOut() templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>You have been logged out</h1><p>`)
		h.link("/", "Back to the home page")
		h.raw(`</p>`)
	})
}

// Profile renders a profile. The edit form is only shown when canEdit is set.
func Profile(p domain.Profile, mediaURL string, canEdit bool, form Form) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<section class="profile">`)
		if p.Avatar != nil {
			h.raw(`<img class="avatar" alt="avatar" src="`)
			h.href(mediaURL + p.Avatar.Key)
			h.raw(`">`)
		}
		h.raw(`<h1>`)
		h.text(p.FullName())
		h.raw(`</h1><dl><dt>Username</dt><dd>`)
		h.text(p.Username)
		h.raw(`</dd>`)
		for _, f := range []struct{ label, value string }{
			{"Email", p.Email},
			{"Phone", p.Phone},
			{"City", p.City},
		} {
			if f.value == "" {
				continue
			}
			h.raw(`<dt>`, f.label, `</dt><dd>`)
			h.text(f.value)
			h.raw(`</dd>`)
		}
		h.raw(`<dt>Joined</dt><dd>`)
		h.date(p.Joined)
		h.raw(`</dd></dl></section>`)

		h.raw(`<section class="blogs"><h2>Blogs</h2>`)
		if canEdit {
			h.raw(`<p>`)
			h.link(domain.ProfilePath(p.Username)+"blog/create/", "Create a blog")
			h.raw(`</p>`)
		}
		if len(p.Blogs) == 0 {
			h.raw(`<p>No blogs yet.</p>`)
		} else {
			h.raw(`<ul>`)
			for _, b := range p.Blogs {
				h.raw(`<li>`)
				h.link(b.Path(), b.Title)
				h.raw(` <small>articles: `, strconv.Itoa(b.ArticlesCount), `</small></li>`)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</section>`)

		if !canEdit {
			return
		}
		h.raw(`<section class="edit"><h2>Edit profile</h2>`)
		h.message(form)
		h.formStart(domain.ProfilePath(p.Username), multipart)
		h.input(form, "First name", "first_name", "text")
		h.input(form, "Last name", "last_name", "text")
		h.input(form, "Email", "email", "email")
		h.input(form, "Phone", "phone", "text")
		h.input(form, "City", "city", "text")
		h.files(form, "Avatar", "avatar", "image/*", false)
		h.submit("Save")
		h.raw(`</section>`)
	})
}

// Blog renders a blog with its articles. Owners also get the management links and the CSV import form.
func Blog(page domain.BlogPage, canEdit bool, result *csvimport.Result, form Form) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>`)
		h.text(page.Title)
		h.raw(`</h1>`)
		if page.Description != "" {
			h.raw(`<p class="description">`)
			h.text(page.Description)
			h.raw(`</p>`)
		}
		h.raw(`<p><small>by `)
		h.link(domain.ProfilePath(page.Owner), page.Owner)
		h.raw(`, `)
		h.date(page.Created)
		h.raw(`</small></p>`)

		if canEdit {
			path := page.Path()
			h.raw(`<p class="actions">`)
			h.link(path+"article/create/", "New article")
			h.raw(` `)
			h.link(path+"edit/", "Edit blog")
			h.raw(` `)
			h.link(path+"delete/", "Delete blog")
			h.raw(`</p>`)
		}

		h.raw(`<h2>Articles (`, strconv.Itoa(len(page.Articles)), `)</h2>`)
		h.articleList(page.Articles, false)

		if !canEdit {
			return
		}
		h.raw(`<section class="import"><h2>Import articles from CSV</h2>`)
		if result != nil {
			h.raw(`<p>Imported `, strconv.Itoa(result.Created), ` articles.</p>`)
			if len(result.Skipped) > 0 {
				h.raw(`<ul class="skipped">`)
				for _, s := range result.Skipped {
					h.raw(`<li>`)
					h.text(s.Error())
					h.raw(`</li>`)
				}
				h.raw(`</ul>`)
			}
		}
		h.message(form)
		h.formStart(page.Path(), multipart)
		h.files(form, "File", "file", ".csv", false)
		h.submit("Import")
		h.raw(`</section>`)
	})
}

func BlogForm(heading, action string, form Form) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>`)
		h.text(heading)
		h.raw(`</h1>`)
		h.message(form)
		h.formStart(action, urlencoded)
		h.input(form, "Title", "title", "text")
		h.textarea(form, "Description", "description")
		h.submit("Save")
	})
}

// Article renders an article and its attachments. Images are shown inline, other files are linked. A non-empty
// notice is shown above the article.
func Article(a domain.Article, mediaURL string, canEdit bool, notice string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.message(Form{Message: notice})
		h.raw(`<article><h1>`)
		h.text(a.Title)
		h.raw(`</h1><p><small>`)
		h.link(domain.BlogPath(a.Owner, a.BlogID), a.BlogTitle)
		h.raw(` by `)
		h.link(domain.ProfilePath(a.Owner), a.Owner)
		h.raw(`, `)
		h.date(a.Created)
		if a.Edited.After(a.Created) {
			h.raw(`, edited `)
			h.date(a.Edited)
		}
		h.raw(`</small></p><div class="content">`)
		h.text(a.Content)
		h.raw(`</div>`)

		if len(a.Attachments) > 0 {
			h.raw(`<h2>Attachments</h2><ul class="attachments">`)
			for _, f := range a.Attachments {
				h.raw(`<li>`)
				if f.Type == domain.ImageType {
					h.raw(`<img alt="`)
					h.text(f.Filename)
					h.raw(`" src="`)
					h.href(mediaURL + f.Key)
					h.raw(`">`)
				}
				h.link(mediaURL+f.Key, f.Filename)
				h.raw(fmt.Sprintf(` <small>%d bytes</small></li>`, f.SizeBytes))
			}
			h.raw(`</ul>`)
		}
		h.raw(`</article>`)

		if canEdit {
			h.raw(`<p class="actions">`)
			h.link(a.Path()+"delete/", "Delete article")
			h.raw(`</p>`)
		}
	})
}

func ArticleForm(heading, action string, form Form) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>`)
		h.text(heading)
		h.raw(`</h1>`)
		h.message(form)
		h.formStart(action, multipart)
		h.input(form, "Title", "title", "text")
		h.textarea(form, "Content", "content")
		h.files(form, "Attachments", "attachments", "", true)
		h.submit("Save")
	})
}

func Revisions(title string, list []domain.Revision) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>History of `)
		h.text(title)
		h.raw(`</h1>`)
		if len(list) == 0 {
			h.raw(`<p>This article has never been edited.</p>`)
			return
		}
		h.raw(`<ol class="revisions">`)
		for _, r := range list {
			h.raw(`<li>`)
			h.date(r.Created)
			h.raw(` `)
			h.link(domain.ProfilePath(r.Username), r.Username)
			h.raw(`<pre>`)
			h.text(r.Diff)
			h.raw(`</pre></li>`)
		}
		h.raw(`</ol>`)
	})
}

// Status renders an error page for an HTTP status code.
func Status(code int, detail string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1>`, strconv.Itoa(code), ` `)
		h.text(http.StatusText(code))
		h.raw(`</h1>`)
		if detail != "" {
			h.raw(`<p>`)
			h.text(detail)
			h.raw(`</p>`)
		}
		h.raw(`<p>`)
		h.link("/", "Back to the home page")
		h.raw(`</p>`)
	})
}
