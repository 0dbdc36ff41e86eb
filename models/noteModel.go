package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a single note document. The mongo `_id` is exposed to clients as
// `id`; the raw field name never appears in a response body.
type Note struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title     string              `json:"title" bson:"title" validate:"required"`
	Content   string              `json:"content" bson:"content,omitempty"`
	FolderID  *primitive.ObjectID `json:"folderId,omitempty" bson:"folderId,omitempty"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// CreateNoteRequest keeps folderId as a plain string: a value that does not
// parse as an ObjectID is dropped on write, not rejected.
type CreateNoteRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	FolderID string `json:"folderId"`
}

// UpdateNoteRequest uses pointers so fields absent from the request body are
// left untouched by the merge.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	FolderID *string `json:"folderId"`
}
