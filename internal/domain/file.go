package domain

import "time"

const (
	ImageType    = "Image"
	DocumentType = "Document"
)

type FileMetadata struct {
	Filename  string
	Type      string
	MimeType  string
	SizeBytes int64
}

// Upload is a file received in a multipart form, fully buffered in memory.
type Upload struct {
	FileMetadata
	Content []byte
}

type File struct {
	FileMetadata
	// Key is the location of the file in the storage backend.
	Key string
}

type Avatar struct {
	File
	ID        int64
	ProfileID int64
	Updated   time.Time
}

type Attachment struct {
	File
	ID        int64
	ArticleID int64
	Created   time.Time
}
