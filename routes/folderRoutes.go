package routes

import (
	"net/http"

	controllers "github.com/thinkful-ei20/noteful-app-v3-cam/controllers"
	"github.com/gorilla/mux"
)

func FolderRoutes(router *mux.Router, fc *controllers.FolderController) {
	router.HandleFunc("/folders", fc.GetFolders).Methods(http.MethodGet)
	router.HandleFunc("/folders/{id}", fc.GetFolder).Methods(http.MethodGet)
	router.HandleFunc("/folders", fc.CreateFolder).Methods(http.MethodPost)
	router.HandleFunc("/folders/{id}", fc.UpdateFolder).Methods(http.MethodPut)
	router.HandleFunc("/folders/{id}", fc.DeleteFolder).Methods(http.MethodDelete)
}
