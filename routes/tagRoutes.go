package routes

import (
	"net/http"

	controllers "github.com/thinkful-ei20/noteful-app-v3-cam/controllers"
	"github.com/gorilla/mux"
)

func TagRoutes(router *mux.Router, tc *controllers.TagController) {
	router.HandleFunc("/tags", tc.GetTags).Methods(http.MethodGet)
	router.HandleFunc("/tags/{id}", tc.GetTag).Methods(http.MethodGet)
	router.HandleFunc("/tags", tc.CreateTag).Methods(http.MethodPost)
	router.HandleFunc("/tags/{id}", tc.UpdateTag).Methods(http.MethodPut)
	router.HandleFunc("/tags/{id}", tc.DeleteTag).Methods(http.MethodDelete)
}
