package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNoteListQuery(t *testing.T) {
	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Empty(t, noteListQuery(NoteFilter{}))
	})

	t.Run("searchTerm builds a case-insensitive or over title and content", func(t *testing.T) {
		query := noteListQuery(NoteFilter{SearchTerm: "cats"})

		or, ok := query["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 2)

		title := or[0].(bson.M)["title"].(bson.M)["$regex"].(primitive.Regex)
		assert.Equal(t, "cats", title.Pattern)
		assert.Equal(t, "i", title.Options)

		content := or[1].(bson.M)["content"].(bson.M)["$regex"].(primitive.Regex)
		assert.Equal(t, "cats", content.Pattern)
	})

	t.Run("regex metacharacters are matched literally", func(t *testing.T) {
		query := noteListQuery(NoteFilter{SearchTerm: "1+1 (draft)"})

		or := query["$or"].(bson.A)
		title := or[0].(bson.M)["title"].(bson.M)["$regex"].(primitive.Regex)
		assert.Equal(t, `1\+1 \(draft\)`, title.Pattern)
	})

	t.Run("folderId is an exact match", func(t *testing.T) {
		folderID := primitive.NewObjectID()
		query := noteListQuery(NoteFilter{FolderID: &folderID})

		assert.Equal(t, folderID, query["folderId"])
		assert.NotContains(t, query, "$or")
	})
}

func TestNameListQuery(t *testing.T) {
	t.Run("empty searchTerm matches everything", func(t *testing.T) {
		assert.Empty(t, nameListQuery(""))
	})

	t.Run("searchTerm matches name case-insensitively", func(t *testing.T) {
		query := nameListQuery("Archive")

		re := query["name"].(bson.M)["$regex"].(primitive.Regex)
		assert.Equal(t, "Archive", re.Pattern)
		assert.Equal(t, "i", re.Options)
	})
}
