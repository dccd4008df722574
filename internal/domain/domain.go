// Package domain holds the types shared by the persistence, service and web layers.
package domain

// BlogPage is everything needed to render a blog: the blog itself and its articles, newest first.
type BlogPage struct {
	Blog
	Articles []Article
}
