package routes

import (
	"net/http"

	controllers "github.com/thinkful-ei20/noteful-app-v3-cam/controllers"
	"github.com/gorilla/mux"
)

func NoteRoutes(router *mux.Router, nc *controllers.NoteController) {
	router.HandleFunc("/notes", nc.GetNotes).Methods(http.MethodGet)
	router.HandleFunc("/notes/{id}", nc.GetNote).Methods(http.MethodGet)
	router.HandleFunc("/notes", nc.CreateNote).Methods(http.MethodPost)
	router.HandleFunc("/notes/{id}", nc.UpdateNote).Methods(http.MethodPut)
	router.HandleFunc("/notes/{id}", nc.DeleteNote).Methods(http.MethodDelete)
}
