package domain

import (
	"fmt"
	"net/url"
)

func ProfilePath(username string) string {
	return "/" + url.PathEscape(username) + "/"
}

func BlogPath(owner string, id int64) string {
	return fmt.Sprintf("%sblog/%d/", ProfilePath(owner), id)
}

func ArticlePath(owner string, blogID, id int64) string {
	return fmt.Sprintf("%sarticle/%d/", BlogPath(owner, blogID), id)
}

func (b Blog) Path() string {
	return BlogPath(b.Owner, b.ID)
}

func (a Article) Path() string {
	return ArticlePath(a.Owner, a.BlogID, a.ID)
}
