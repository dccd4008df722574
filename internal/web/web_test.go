package web

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/blogs/internal/config"
	dbimpl "github.com/sidereusnuntius/blogs/internal/db/impl"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/initialization"
	"github.com/sidereusnuntius/blogs/internal/service"
	core "github.com/sidereusnuntius/blogs/internal/service/impl"
	"github.com/sidereusnuntius/blogs/internal/state"
	"github.com/sidereusnuntius/blogs/internal/storage/filestore"
)

const password = "correct horse"

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// removals records the keys handed to the file queue instead of deleting them.
type removals struct {
	mu   sync.Mutex
	keys []string
}

func (q *removals) RemoveFiles(_ context.Context, keys ...string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, k := range keys {
		if k != "" {
			q.keys = append(q.keys, k)
		}
	}
	return nil
}

func (q *removals) removed() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.keys...)
}

type app struct {
	t       *testing.T
	router  http.Handler
	db      *sql.DB
	service service.Service
	queue   *removals
}

func newApp(t *testing.T) *app {
	t.Helper()
	name := "web_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	d, err := initialization.OpenDB("file:" + name + "?mode=memory&cache=shared&_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open database: %s", err)
	}
	t.Cleanup(func() { d.Close() })
	if err = initialization.SetupDB(d, "../../migrations", name); err != nil {
		t.Fatalf("failed to run migrations: %s", err)
	}

	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %s", err)
	}

	cfg := config.Configuration{
		Name:           "Blogs",
		MediaURL:       "/media/",
		StaticDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
	}
	q := &removals{}
	svc := core.New(&state.State{
		Config:  cfg,
		DB:      dbimpl.New(d),
		Storage: store,
		Queue:   q,
	})

	manager := scs.NewCookieManager("u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")
	h := New(&cfg, svc, manager)
	router := chi.NewRouter()
	h.Mount(router)

	return &app{t: t, router: router, db: d, service: svc, queue: q}
}

type request struct {
	method  string
	path    string
	body    io.Reader
	ctype   string
	cookies []*http.Cookie
}

func (a *app) do(req request) *http.Response {
	a.t.Helper()
	r := httptest.NewRequest(req.method, req.path, req.body)
	if req.ctype != "" {
		r.Header.Set("Content-Type", req.ctype)
	}
	for _, c := range req.cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, r)
	return w.Result()
}

func (a *app) get(path string, cookies []*http.Cookie) *http.Response {
	a.t.Helper()
	return a.do(request{method: http.MethodGet, path: path, cookies: cookies})
}

func (a *app) postForm(path string, values url.Values, cookies []*http.Cookie) *http.Response {
	a.t.Helper()
	return a.do(request{
		method:  http.MethodPost,
		path:    path,
		body:    strings.NewReader(values.Encode()),
		ctype:   "application/x-www-form-urlencoded",
		cookies: cookies,
	})
}

type upload struct {
	field, filename string
	content         []byte
}

func (a *app) postMultipart(path string, values url.Values, files []upload, cookies []*http.Cookie) *http.Response {
	a.t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, vs := range values {
		for _, v := range vs {
			if err := mw.WriteField(k, v); err != nil {
				a.t.Fatal(err)
			}
		}
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.filename)
		if err != nil {
			a.t.Fatal(err)
		}
		fw.Write(f.content)
	}
	mw.Close()
	return a.do(request{method: http.MethodPost, path: path, body: body, ctype: mw.FormDataContentType(), cookies: cookies})
}

// register signs a user up and returns the session cookies the sign up set.
func (a *app) register(username string, extra url.Values) []*http.Cookie {
	a.t.Helper()
	values := url.Values{
		"username":  {username},
		"password1": {password},
		"password2": {password},
	}
	for k, v := range extra {
		values[k] = v
	}
	res := a.postForm(RegisterRoute, values, nil)
	if res.StatusCode != http.StatusFound {
		a.t.Fatalf("registering %s: expected status 302, got %d", username, res.StatusCode)
	}
	return res.Cookies()
}

func (a *app) createBlog(cookies []*http.Cookie, owner, title string) string {
	a.t.Helper()
	res := a.postForm(domain.ProfilePath(owner)+"blog/create/", url.Values{"title": {title}, "description": {"about " + title}}, cookies)
	if res.StatusCode != http.StatusFound {
		a.t.Fatalf("creating blog: expected status 302, got %d", res.StatusCode)
	}
	return res.Header.Get("Location")
}

func (a *app) createArticle(cookies []*http.Cookie, blog, title string, files ...upload) string {
	a.t.Helper()
	res := a.postMultipart(blog+"article/create/", url.Values{"title": {title}, "content": {title + " text"}}, files, cookies)
	if res.StatusCode != http.StatusFound {
		a.t.Fatalf("creating article: expected status 302, got %d", res.StatusCode)
	}
	return res.Header.Get("Location")
}

func (a *app) count(query string, args ...any) int {
	a.t.Helper()
	var n int
	if err := a.db.QueryRow(query, args...).Scan(&n); err != nil {
		a.t.Fatalf("query %q failed: %s", query, err)
	}
	return n
}

// latest returns the cookies a response set, or the ones sent with the request when it set none.
func latest(sent, set []*http.Cookie) []*http.Cookie {
	if len(set) == 0 {
		return sent
	}
	return set
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestSignUpAndLogin(t *testing.T) {
	a := newApp(t)
	a.register("alice", url.Values{"city": {"Lisbon"}})

	t.Run("duplicate username", func(t *testing.T) {
		res := a.postForm(RegisterRoute, url.Values{
			"username": {"alice"}, "password1": {password}, "password2": {password},
		}, nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected the form again, got %d", res.StatusCode)
		}
		if n := a.count("SELECT COUNT(*) FROM users"); n != 1 {
			t.Errorf("expected 1 user, got %d", n)
		}
	})

	tests := []struct {
		name     string
		password string
		next     string
		status   int
		location string
	}{
		{name: "wrong password", password: "nope", status: http.StatusOK},
		{name: "no next", password: password, status: http.StatusFound, location: "/"},
		{name: "local next", password: password, next: "/alice/", status: http.StatusFound, location: "/alice/"},
		{name: "foreign next", password: password, next: "//evil.example/", status: http.StatusFound, location: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.postForm(LoginRoute, url.Values{
				"username": {"alice"}, "password": {tt.password}, "next": {tt.next},
			}, nil)
			if res.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, res.StatusCode)
			}
			if got := res.Header.Get("Location"); got != tt.location {
				t.Errorf("expected location %q, got %q", tt.location, got)
			}
		})
	}
}

func TestUsernameWithPunctuation(t *testing.T) {
	a := newApp(t)
	cookies := a.register("john.doe", nil)

	if res := a.get("/john.doe/", nil); res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for the profile, got %d", res.StatusCode)
	}
	blog := a.createBlog(cookies, "john.doe", "Notes")
	if !strings.HasPrefix(blog, "/john.doe/blog/") {
		t.Errorf("unexpected blog path %q", blog)
	}
}

func TestLogout(t *testing.T) {
	a := newApp(t)
	cookies := a.register("alice", nil)

	res := a.get(LogoutRoute, cookies)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	expired := false
	for _, c := range res.Cookies() {
		if c.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Error("expected the session cookie to be expired")
	}
	if body := readBody(t, res); strings.Contains(body, LogoutRoute) {
		t.Error("the logged out page still offers to log out")
	}
}

func TestAnonymousIsSentToLogin(t *testing.T) {
	a := newApp(t)
	cookies := a.register("alice", nil)
	blog := a.createBlog(cookies, "alice", "Travel")
	article := a.createArticle(cookies, blog, "Porto")

	paths := []string{
		"/alice/blog/create/",
		blog + "edit/",
		blog + "delete/",
		blog + "article/create/",
		article + "edit/",
		article + "delete/",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			res := a.get(path, nil)
			if res.StatusCode != http.StatusFound {
				t.Fatalf("expected status 302, got %d", res.StatusCode)
			}
			want := LoginRoute + "?next=" + url.QueryEscape(path)
			if got := res.Header.Get("Location"); got != want {
				t.Errorf("expected location %q, got %q", want, got)
			}
		})
	}
}

func TestNonOwnerCannotChangeResources(t *testing.T) {
	a := newApp(t)
	alice := a.register("alice", nil)
	bob := a.register("bob", nil)
	blog := a.createBlog(alice, "alice", "Travel")
	article := a.createArticle(alice, blog, "Porto")

	t.Run("edit blog", func(t *testing.T) {
		res := a.postForm(blog+"edit/", url.Values{"title": {"Hacked"}}, bob)
		if res.StatusCode != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", res.StatusCode)
		}
		if n := a.count("SELECT COUNT(*) FROM blogs WHERE title = 'Hacked'"); n != 0 {
			t.Error("blog was modified")
		}
	})

	t.Run("edit article", func(t *testing.T) {
		res := a.postMultipart(article+"edit/", url.Values{"title": {"Hacked"}, "content": {"x"}}, nil, bob)
		if res.StatusCode != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", res.StatusCode)
		}
		if n := a.count("SELECT COUNT(*) FROM articles WHERE title = 'Hacked'"); n != 0 {
			t.Error("article was modified")
		}
	})

	t.Run("edit profile", func(t *testing.T) {
		res := a.postForm("/alice/", url.Values{"city": {"Nowhere"}}, bob)
		if res.StatusCode != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", res.StatusCode)
		}
	})

	t.Run("create blog", func(t *testing.T) {
		res := a.postForm("/alice/blog/create/", url.Values{"title": {"Spam"}}, bob)
		if res.StatusCode != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", res.StatusCode)
		}
	})

	t.Run("delete article", func(t *testing.T) {
		res := a.get(article+"delete/", bob)
		if res.StatusCode != http.StatusFound {
			t.Fatalf("expected status 302, got %d", res.StatusCode)
		}
		if n := a.count("SELECT COUNT(*) FROM articles"); n != 1 {
			t.Errorf("expected the article to survive, found %d articles", n)
		}
	})

	t.Run("delete blog", func(t *testing.T) {
		res := a.get(blog+"delete/", bob)
		if res.StatusCode != http.StatusFound {
			t.Fatalf("expected status 302, got %d", res.StatusCode)
		}
		if n := a.count("SELECT COUNT(*) FROM blogs"); n != 1 {
			t.Errorf("expected the blog to survive, found %d blogs", n)
		}
	})

	t.Run("read", func(t *testing.T) {
		for _, path := range []string{"/alice/", blog, article, article + "history/"} {
			if res := a.get(path, bob); res.StatusCode != http.StatusOK {
				t.Errorf("GET %s: expected status 200, got %d", path, res.StatusCode)
			}
		}
	})
}

func TestProfile(t *testing.T) {
	a := newApp(t)
	cookies := a.register("alice", url.Values{"phone": {"123"}, "city": {"Lisbon"}})

	t.Run("omitted fields are cleared", func(t *testing.T) {
		res := a.postMultipart("/alice/", url.Values{"city": {"Porto"}}, nil, cookies)
		if res.StatusCode != http.StatusFound {
			t.Fatalf("expected status 302, got %d", res.StatusCode)
		}

		p, err := a.service.GetProfile(context.Background(), "alice")
		if err != nil {
			t.Fatal(err)
		}
		got := []string{p.Phone, p.City}
		if diff := cmp.Diff([]string{"", "Porto"}, got); diff != "" {
			t.Errorf("profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("avatar replacement keeps one file", func(t *testing.T) {
		for i := range 2 {
			res := a.postMultipart("/alice/", url.Values{"city": {"Porto"}},
				[]upload{{field: "avatar", filename: "me.png", content: append(bytes.Clone(pngHeader), byte(i))}}, cookies)
			if res.StatusCode != http.StatusFound {
				t.Fatalf("upload %d: expected status 302, got %d", i, res.StatusCode)
			}
		}

		if n := a.count("SELECT COUNT(*) FROM avatars"); n != 1 {
			t.Errorf("expected 1 avatar, got %d", n)
		}
		if n := len(a.queue.removed()); n != 1 {
			t.Errorf("expected the first avatar to be queued for removal, got %d removals", n)
		}

		p, err := a.service.GetProfile(context.Background(), "alice")
		if err != nil {
			t.Fatal(err)
		}
		res := a.get("/media/"+p.Avatar.Key, nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200 for the avatar, got %d", res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("expected image/png, got %q", ct)
		}
	})

	t.Run("avatar must be an image", func(t *testing.T) {
		res := a.postMultipart("/alice/", url.Values{"city": {"Porto"}},
			[]upload{{field: "avatar", filename: "me.png", content: []byte("plain text")}}, cookies)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected the form again, got %d", res.StatusCode)
		}
		if n := a.count("SELECT COUNT(*) FROM avatars WHERE mime_type = 'image/png'"); n != 1 {
			t.Errorf("expected the png avatar to stay, got %d", n)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if res := a.get("/nobody/", nil); res.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", res.StatusCode)
		}
	})
}

func TestArticles(t *testing.T) {
	a := newApp(t)
	cookies := a.register("alice", nil)
	blog := a.createBlog(cookies, "alice", "Travel")
	article := a.createArticle(cookies, blog, "Porto",
		upload{field: "attachments", filename: "a.txt", content: []byte("first")},
		upload{field: "attachments", filename: "b.png", content: pngHeader},
	)

	res := a.postMultipart(article+"edit/", url.Values{"title": {"Porto"}, "content": {"rewritten"}},
		[]upload{{field: "attachments", filename: "c.txt", content: []byte("third")}}, cookies)
	if res.StatusCode != http.StatusFound {
		t.Fatalf("expected status 302, got %d", res.StatusCode)
	}

	if n := a.count("SELECT COUNT(*) FROM attachments"); n != 3 {
		t.Errorf("expected attachments to accumulate to 3, got %d", n)
	}
	if n := a.count("SELECT COUNT(*) FROM attachments WHERE mime_type LIKE 'image/%'"); n != 1 {
		t.Errorf("expected 1 image attachment, got %d", n)
	}

	res = a.get(article, nil)
	body := readBody(t, res)
	for _, want := range []string{"rewritten", "a.txt", "b.png", "c.txt"} {
		if !strings.Contains(body, want) {
			t.Errorf("article page does not mention %q", want)
		}
	}

	if res = a.get(article+"history/", nil); res.StatusCode != http.StatusOK {
		t.Errorf("expected status 200 for the history, got %d", res.StatusCode)
	}
	if res = a.get(blog+"article/999/", nil); res.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404 for a missing article, got %d", res.StatusCode)
	}

	t.Run("invalid form", func(t *testing.T) {
		res := a.postMultipart(blog+"article/create/", url.Values{"title": {"  "}}, nil, cookies)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected the form again, got %d", res.StatusCode)
		}
		if n := a.count("SELECT COUNT(*) FROM articles"); n != 1 {
			t.Errorf("expected 1 article, got %d", n)
		}
	})
}

func TestDeleteCascades(t *testing.T) {
	a := newApp(t)
	cookies := a.register("alice", nil)
	blog := a.createBlog(cookies, "alice", "Travel")
	a.createArticle(cookies, blog, "Porto", upload{field: "attachments", filename: "a.txt", content: []byte("a")})
	a.createArticle(cookies, blog, "Braga", upload{field: "attachments", filename: "b.txt", content: []byte("b")})

	res := a.get(blog+"delete/", cookies)
	if res.StatusCode != http.StatusFound {
		t.Fatalf("expected status 302, got %d", res.StatusCode)
	}
	if got := res.Header.Get("Location"); got != "/alice/" {
		t.Errorf("expected a redirect to the profile, got %q", got)
	}

	for _, table := range []string{"blogs", "articles", "attachments", "article_revisions"} {
		if n := a.count("SELECT COUNT(*) FROM " + table); n != 0 {
			t.Errorf("expected %s to be empty, got %d rows", table, n)
		}
	}
	if n := len(a.queue.removed()); n != 2 {
		t.Errorf("expected 2 files queued for removal, got %d", n)
	}
}

func TestImportArticles(t *testing.T) {
	a := newApp(t)
	cookies := a.register("alice", nil)
	blog := a.createBlog(cookies, "alice", "Travel")

	tests := []struct {
		name    string
		payload []byte
		created int
		body    string
	}{
		{
			name:    "utf-8",
			payload: []byte("\"Porto\";\"Bridges\"\n\"Braga\";\"Churches\"\n"),
			created: 2,
			body:    "Imported 2 articles.",
		},
		{
			name:    "windows-1251",
			payload: []byte("\"\xcf\xf0\xe8\xe2\xe5\xf2\";\"\xec\xe8\xf0\"\n"),
			created: 1,
			body:    "Привет",
		},
		{
			name:    "malformed row is skipped",
			payload: []byte("\"Lisbon\";\"Trams\"\nno separator here\n"),
			created: 1,
			body:    "line 2",
		},
		{
			name:    "undecodable",
			payload: []byte("\"Faro\";\"\x98\"\n"),
			body:    "no articles were imported",
		},
	}
	total := 0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.postMultipart(blog, nil, []upload{{field: "file", filename: "import.csv", content: tt.payload}}, cookies)
			if res.StatusCode != http.StatusFound {
				t.Fatalf("expected status 302, got %d", res.StatusCode)
			}
			if got := res.Header.Get("Location"); got != blog {
				t.Errorf("expected a redirect to %q, got %q", blog, got)
			}

			res = a.get(blog, res.Cookies())
			if body := readBody(t, res); !strings.Contains(body, tt.body) {
				t.Errorf("expected the page to contain %q", tt.body)
			}
			total += tt.created
			if n := a.count("SELECT COUNT(*) FROM articles"); n != total {
				t.Errorf("expected %d articles, got %d", total, n)
			}
		})
	}

	t.Run("report is shown once", func(t *testing.T) {
		res := a.postMultipart(blog, nil, []upload{{field: "file", filename: "import.csv", content: []byte("\"Evora\";\"Temple\"\n")}}, cookies)
		total++
		session := latest(cookies, res.Cookies())
		res = a.get(blog, session)
		if body := readBody(t, res); !strings.Contains(body, "Imported 1 articles.") {
			t.Fatal("report missing after the redirect")
		}
		session = latest(session, res.Cookies())
		body := readBody(t, a.get(blog, session))
		if !strings.Contains(body, "Import articles from CSV") {
			t.Fatal("owner session lost after reading the report")
		}
		if strings.Contains(body, "Imported 1 articles.") {
			t.Error("report shown again")
		}
	})

	t.Run("fields are stored as parsed", func(t *testing.T) {
		payload := []byte("\"A   B\";\"  spaced  \"\n\"Empty\";\"\"\n")
		res := a.postMultipart(blog, nil, []upload{{field: "file", filename: "import.csv", content: payload}}, cookies)
		if res.StatusCode != http.StatusFound {
			t.Fatalf("expected status 302, got %d", res.StatusCode)
		}
		total += 2
		if n := a.count("SELECT COUNT(*) FROM articles WHERE title = 'A   B' AND content = '  spaced  '"); n != 1 {
			t.Error("spaced row was not stored verbatim")
		}
		if n := a.count("SELECT COUNT(*) FROM articles WHERE title = 'Empty' AND content = ''"); n != 1 {
			t.Error("row with empty content was not stored")
		}
		if n := a.count("SELECT COUNT(*) FROM articles"); n != total {
			t.Errorf("expected %d articles, got %d", total, n)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		res := a.postMultipart(blog, nil, nil, cookies)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", res.StatusCode)
		}
		if n := a.count("SELECT COUNT(*) FROM articles"); n != total {
			t.Errorf("expected %d articles, got %d", total, n)
		}
	})
}

func TestMetrics(t *testing.T) {
	a := newApp(t)
	a.get("/", nil)

	res := a.get("/metrics", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if body := readBody(t, res); !strings.Contains(body, "blogs_http_requests_total") {
		t.Error("request counter missing from /metrics")
	}
}

func TestUnknownMedia(t *testing.T) {
	a := newApp(t)
	for _, path := range []string{"/media/nothing/here", "/media/../etc/passwd"} {
		res := a.get(path, nil)
		if res.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s: expected status 404, got %d", path, res.StatusCode)
		}
	}
}
