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

type FolderController struct {
	store store.FolderStore
}

func NewFolderController(s store.FolderStore) *FolderController {
	return &FolderController{store: s}
}

// GetFolders lists folders, optionally narrowed by searchTerm on name.
func (fc *FolderController) GetFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := fc.store.List(r.Context(), r.URL.Query().Get("searchTerm"))
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, folders)
}

// GetFolder returns a single folder by id.
func (fc *FolderController) GetFolder(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, helper.NewNotFoundError("Folder not found"))
		return
	}

	folder, err := fc.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		helper.RespondError(w, helper.NewNotFoundError("Folder not found"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, folder)
}

// CreateFolder inserts a new folder. Name is required and unique.
func (fc *FolderController) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req models.FolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Invalid request body"))
		return
	}

	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Missing `name` in request body"))
		return
	}

	created, err := fc.store.Create(r.Context(), &models.Folder{Name: req.Name})
	if errors.Is(err, store.ErrDuplicateName) {
		helper.RespondError(w, helper.NewValidationError("The folder name already exists"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	w.Header().Set("Location", "/folders/"+created.ID.Hex())
	helper.RespondJSON(w, http.StatusCreated, created)
}

// UpdateFolder renames a folder. The read-then-write pair is not atomic; a
// concurrent rename between the two is last-writer-wins.
func (fc *FolderController) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, helper.NewValidationError("The `id` is not valid"))
		return
	}

	var req models.FolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Invalid request body"))
		return
	}

	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Missing `name` in request body"))
		return
	}

	existing, err := fc.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		helper.RespondError(w, helper.NewValidationError("The folder does not exist"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	if existing.Name == req.Name {
		helper.RespondError(w, helper.NewValidationError("The folder name already exists"))
		return
	}

	folder, err := fc.store.SetName(r.Context(), id, req.Name)
	if errors.Is(err, store.ErrDuplicateName) {
		helper.RespondError(w, helper.NewValidationError("The folder name already exists"))
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		helper.RespondError(w, helper.NewValidationError("The folder does not exist"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, folder)
}

// DeleteFolder removes a folder. Notes referencing it are left untouched and
// the response is 204 whether or not the folder existed.
func (fc *FolderController) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := fc.store.Delete(r.Context(), id); err != nil {
		helper.RespondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
