package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	controllers "github.com/thinkful-ei20/noteful-app-v3-cam/controllers"
	"github.com/thinkful-ei20/noteful-app-v3-cam/models"
	"github.com/thinkful-ei20/noteful-app-v3-cam/routes"
	"github.com/thinkful-ei20/noteful-app-v3-cam/store"
)

type fakeTagStore struct {
	tags []models.Tag
}

func (f *fakeTagStore) List(_ context.Context, searchTerm string) ([]models.Tag, error) {
	term := strings.ToLower(searchTerm)
	matches := []models.Tag{}
	for _, tag := range f.tags {
		if term != "" && !strings.Contains(strings.ToLower(tag.Name), term) {
			continue
		}
		matches = append(matches, tag)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches, nil
}

func (f *fakeTagStore) Get(_ context.Context, id primitive.ObjectID) (*models.Tag, error) {
	for i := range f.tags {
		if f.tags[i].ID == id {
			tag := f.tags[i]
			return &tag, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTagStore) Create(_ context.Context, tag *models.Tag) (*models.Tag, error) {
	for _, existing := range f.tags {
		if existing.Name == tag.Name {
			return nil, store.ErrDuplicateName
		}
	}
	now := time.Now().UTC()
	tag.ID = primitive.NewObjectID()
	tag.CreatedAt = now
	tag.UpdatedAt = now
	f.tags = append(f.tags, *tag)
	return tag, nil
}

func (f *fakeTagStore) SetName(_ context.Context, id primitive.ObjectID, name string) (*models.Tag, error) {
	for _, existing := range f.tags {
		if existing.ID != id && existing.Name == name {
			return nil, store.ErrDuplicateName
		}
	}
	for i := range f.tags {
		if f.tags[i].ID == id {
			f.tags[i].Name = name
			f.tags[i].UpdatedAt = time.Now().UTC()
			tag := f.tags[i]
			return &tag, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTagStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.tags {
		if f.tags[i].ID == id {
			f.tags = append(f.tags[:i], f.tags[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTagRouter(s store.TagStore) *mux.Router {
	router := mux.NewRouter()
	routes.TagRoutes(router, controllers.NewTagController(s))
	return router
}

func seedTag(f *fakeTagStore, name string) models.Tag {
	now := time.Now().UTC()
	tag := models.Tag{ID: primitive.NewObjectID(), Name: name, CreatedAt: now, UpdatedAt: now}
	f.tags = append(f.tags, tag)
	return tag
}

func TestTagCRUD(t *testing.T) {
	fake := &fakeTagStore{}
	router := newTagRouter(fake)

	created := doRequest(t, router, http.MethodPost, "/tags", `{"name": "urgent"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["id"].(string)
	assert.Equal(t, "/tags/"+id, created.Header().Get("Location"))

	fetched := doRequest(t, router, http.MethodGet, "/tags/"+id, "")
	require.Equal(t, http.StatusOK, fetched.Code)
	assert.Equal(t, "urgent", decodeBody(t, fetched)["name"])

	renamed := doRequest(t, router, http.MethodPut, "/tags/"+id, `{"name": "someday"}`)
	require.Equal(t, http.StatusOK, renamed.Code)
	assert.Equal(t, "someday", decodeBody(t, renamed)["name"])

	deleted := doRequest(t, router, http.MethodDelete, "/tags/"+id, "")
	require.Equal(t, http.StatusNoContent, deleted.Code)
	assert.Empty(t, fake.tags)
}

func TestGetTags(t *testing.T) {
	fake := &fakeTagStore{}
	seedTag(fake, "urgent")
	seedTag(fake, "someday")
	router := newTagRouter(fake)

	rec := doRequest(t, router, http.MethodGet, "/tags?searchTerm=URG", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var tags []models.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
	require.Len(t, tags, 1)
	assert.Equal(t, "urgent", tags[0].Name)
}

func TestCreateTagFailures(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		router := newTagRouter(&fakeTagStore{})

		rec := doRequest(t, router, http.MethodPost, "/tags", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing `name` in request body", decodeBody(t, rec)["message"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		fake := &fakeTagStore{}
		seedTag(fake, "urgent")
		router := newTagRouter(fake)

		rec := doRequest(t, router, http.MethodPost, "/tags", `{"name": "urgent"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The tag name already exists", decodeBody(t, rec)["message"])
	})
}

func TestUpdateTagFailures(t *testing.T) {
	t.Run("rename to a sibling's name", func(t *testing.T) {
		fake := &fakeTagStore{}
		seedTag(fake, "urgent")
		tag := seedTag(fake, "someday")
		router := newTagRouter(fake)

		rec := doRequest(t, router, http.MethodPut, "/tags/"+tag.ID.Hex(), `{"name": "urgent"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The tag name already exists", decodeBody(t, rec)["message"])
	})

	t.Run("unknown id", func(t *testing.T) {
		router := newTagRouter(&fakeTagStore{})

		rec := doRequest(t, router, http.MethodPut, "/tags/"+primitive.NewObjectID().Hex(), `{"name": "urgent"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The tag does not exist", decodeBody(t, rec)["message"])
	})
}

func TestDeleteTagIdempotent(t *testing.T) {
	router := newTagRouter(&fakeTagStore{})

	rec := doRequest(t, router, http.MethodDelete, "/tags/"+primitive.NewObjectID().Hex(), "")

	require.Equal(t, http.StatusNoContent, rec.Code)
}
