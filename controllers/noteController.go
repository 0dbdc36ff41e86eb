package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	helper "github.com/thinkful-ei20/noteful-app-v3-cam/helper"
	"github.com/thinkful-ei20/noteful-app-v3-cam/models"
	"github.com/thinkful-ei20/noteful-app-v3-cam/store"
)

var validate = validator.New()

type NoteController struct {
	store store.NoteStore
}

func NewNoteController(s store.NoteStore) *NoteController {
	return &NoteController{store: s}
}

// GetNotes lists notes, optionally narrowed by searchTerm and folderId.
func (nc *NoteController) GetNotes(w http.ResponseWriter, r *http.Request) {
	filter := store.NoteFilter{SearchTerm: r.URL.Query().Get("searchTerm")}

	// An unparseable folderId can never match a stored reference, so it is
	// ignored rather than rejected.
	if folderID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("folderId")); err == nil {
		filter.FolderID = &folderID
	}

	notes, err := nc.store.List(r.Context(), filter)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, notes)
}

// GetNote returns a single note by id.
func (nc *NoteController) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, helper.NewNotFoundError("Note not found"))
		return
	}

	note, err := nc.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		helper.RespondError(w, helper.NewNotFoundError("Note not found"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, note)
}

// CreateNote inserts a new note. Title is required; an invalid folderId is
// dropped, never rejected, and the referenced folder is not checked for
// existence.
func (nc *NoteController) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Invalid request body"))
		return
	}

	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Missing `title` in request body"))
		return
	}

	note := models.Note{Title: req.Title, Content: req.Content}
	if folderID, err := primitive.ObjectIDFromHex(req.FolderID); err == nil {
		note.FolderID = &folderID
	}

	created, err := nc.store.Create(r.Context(), &note)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	w.Header().Set("Location", "/notes/"+created.ID.Hex())
	helper.RespondJSON(w, http.StatusCreated, created)
}

// UpdateNote merges the caller-supplied fields into an existing note. Only
// title and content are merged unconditionally; folderId only when valid.
func (nc *NoteController) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, helper.NewValidationError("The `id` is not valid"))
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, helper.NewValidationError("Invalid request body"))
		return
	}

	if req.Title == nil || *req.Title == "" {
		helper.RespondError(w, helper.NewValidationError("Missing `title` in request body"))
		return
	}

	update := store.NoteUpdate{Title: req.Title, Content: req.Content}
	if req.FolderID != nil {
		if folderID, err := primitive.ObjectIDFromHex(*req.FolderID); err == nil {
			update.FolderID = &folderID
		}
	}

	note, err := nc.store.Update(r.Context(), id, update)
	if errors.Is(err, store.ErrNotFound) {
		helper.RespondError(w, helper.NewNotFoundError("Note not found"))
		return
	}
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, note)
}

// DeleteNote removes a note. Deletion is idempotent: an id that never
// existed is already gone, so the response is 204 either way.
func (nc *NoteController) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := nc.store.Delete(r.Context(), id); err != nil {
		helper.RespondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
