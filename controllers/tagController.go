package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	helper "github.com/thinkful-ei20/noteful-app-v3-cam/helper"
	"github.com/thinkful-ei20/noteful-app-v3-cam/models"
	"github.com/thinkful-ei20/noteful-app-v3-cam/store"
)

type TagController struct {
	store store.TagStore
}

func NewTagController(s store.TagStore) *TagController {
	return &TagController{store: s}
}

// GetTags lists tags, optionally narrowed by searchTerm on name.
func (tc *TagController) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := tc.store.List(r.Context(), r.URL.Query().Get("searchTerm"))
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, tags)
}

// GetTag returns a single tag by id.
func (tc *TagController) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, helper.NewNotFoundError("Tag not found"))
		return
	}

	tag, err := tc.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		helper.RespondError(w, helper.NewNotFoundError("Tag not found"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, tag)
}

// CreateTag inserts a new tag. Name is required and unique.
func (tc *TagController) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req models.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Invalid request body"))
		return
	}

	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Missing `name` in request body"))
		return
	}

	created, err := tc.store.Create(r.Context(), &models.Tag{Name: req.Name})
	if errors.Is(err, store.ErrDuplicateName) {
		helper.RespondError(w, helper.NewValidationError("The tag name already exists"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	w.Header().Set("Location", "/tags/"+created.ID.Hex())
	helper.RespondJSON(w, http.StatusCreated, created)
}

// UpdateTag renames a tag. Same read-then-write pair as folders, with the
// same non-atomicity.
func (tc *TagController) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, helper.NewValidationError("The `id` is not valid"))
		return
	}

	var req models.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Invalid request body"))
		return
	}

	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Missing `name` in request body"))
		return
	}

	existing, err := tc.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		helper.RespondError(w, helper.NewValidationError("The tag does not exist"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	if existing.Name == req.Name {
		helper.RespondError(w, helper.NewValidationError("The tag name already exists"))
		return
	}

	tag, err := tc.store.SetName(r.Context(), id, req.Name)
	if errors.Is(err, store.ErrDuplicateName) {
		helper.RespondError(w, helper.NewValidationError("The tag name already exists"))
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		helper.RespondError(w, helper.NewValidationError("The tag does not exist"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, tag)
}

// DeleteTag removes a tag; 204 whether or not it existed.
func (tc *TagController) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := tc.store.Delete(r.Context(), id); err != nil {
		helper.RespondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
