package templates

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

func render(t *testing.T, data PageData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Layout(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %s", err)
	}
	return buf.String()
}

func TestLayoutEscapesContent(t *testing.T) {
	a := domain.Article{
		ArticleCore: domain.ArticleCore{Title: "<script>", Content: "x & y"},
		ID:          2,
		BlogID:      1,
		Owner:       "alice",
	}
	out := render(t, PageData{PageTitle: "t", Child: Article(a, "/media/", false, "")})

	if strings.Contains(out, "<script>") {
		t.Error("title was not escaped")
	}
	if !strings.Contains(out, "x &amp; y") {
		t.Error("content was not escaped")
	}
	if strings.Contains(out, "Delete article") {
		t.Error("delete link shown to a visitor without access")
	}
}

func TestLayoutLoginLinkCarriesNext(t *testing.T) {
	path, _ := url.Parse("/alice/blog/1/")
	out := render(t, PageData{PageTitle: "t", Place: PlaceBlog, Path: path})
	if !strings.Contains(out, `/login/?next=%2Falice%2Fblog%2F1%2F`) {
		t.Errorf("login link lacks next parameter:\n%s", out)
	}
}

func TestProfileEditControls(t *testing.T) {
	p := domain.Profile{UserCore: domain.UserCore{Username: "alice"}}
	cases := []struct {
		name    string
		canEdit bool
	}{
		{"Owner", true},
		{"Visitor", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := render(t, PageData{Child: Profile(p, "/media/", c.canEdit, Form{})})
			if got := strings.Contains(out, "Edit profile"); got != c.canEdit {
				t.Errorf("expected edit form shown=%v", c.canEdit)
			}
		})
	}
}

func TestArticleShowsNotice(t *testing.T) {
	a := domain.Article{ArticleCore: domain.ArticleCore{Title: "T", Content: "C"}, ID: 2, BlogID: 1, Owner: "alice"}

	out := render(t, PageData{PageTitle: "t", Child: Article(a, "/media/", true, "some attachments could not be stored")})
	if !strings.Contains(out, `<p class="error">some attachments could not be stored</p>`) {
		t.Error("notice missing")
	}

	out = render(t, PageData{PageTitle: "t", Child: Article(a, "/media/", true, "")})
	if strings.Contains(out, `class="error"`) {
		t.Error("empty notice rendered")
	}
}
