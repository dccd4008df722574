package domain

import (
	"time"
	"unicode/utf8"
)

const ShortContentLen = 100

type Blog struct {
	ID            int64
	ProfileID     int64
	Owner         string
	Title         string
	Description   string
	Created       time.Time
	ArticlesCount int
}

type ArticleCore struct {
	Title   string
	Content string
}

type Article struct {
	ArticleCore
	ID               int64
	BlogID           int64
	BlogTitle        string
	Owner            string
	Created          time.Time
	Edited           time.Time
	AttachmentsCount int
	Attachments      []Attachment
}

// ShortContent returns at most the first ShortContentLen characters of the article.
func (a Article) ShortContent() string {
	if utf8.RuneCountInString(a.Content) <= ShortContentLen {
		return a.Content
	}
	r := []rune(a.Content)
	return string(r[:ShortContentLen])
}

type Revision struct {
	ID        int64
	ArticleID int64
	Username  string
	Diff      string
	Created   time.Time
}
