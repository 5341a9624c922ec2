package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
	"github.com/SviatSloboda/MightyPC-sub001/internal/service"
)

// catalogRoutes registers the uniform CRUD surface for one catalog resource
// under /api/{name}. Reads are open, writes and photo upload require a
// session.
func catalogRoutes[T any, PT interface {
	*T
	model.Component
}](api *mux.Router, s Server, name string, svc service.Catalog[T, PT]) {
	sub := api.PathPrefix("/" + name).Subrouter()
	sub.HandleFunc("", catalogList(s, name, svc)).Methods(http.MethodGet)
	sub.Handle("", s.authMw(catalogCreate(s, name, svc))).Methods(http.MethodPost)
	sub.Handle("/upload/image/{id}", s.authMw(catalogUploadImage(s, name, svc))).Methods(http.MethodPost)
	sub.HandleFunc("/{id}", catalogGet(s, name, svc)).Methods(http.MethodGet)
	sub.Handle("/{id}", s.authMw(catalogUpdate(s, name, svc))).Methods(http.MethodPut)
	sub.Handle("/{id}", s.authMw(catalogDelete(s, name, svc))).Methods(http.MethodDelete)
}

func catalogList[T any, PT interface {
	*T
	model.Component
}](s Server, name string, svc service.Catalog[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := svc.List(r.Context())
		if err != nil {
			s.writeServiceError(w, name+"List", err)
			return
		}
		s.writeJsonResponse(w, docs, http.StatusOK)
	}
}

func catalogGet[T any, PT interface {
	*T
	model.Component
}](s Server, name string, svc service.Catalog[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := svc.Get(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			s.writeServiceError(w, name+"Get", err)
			return
		}
		s.writeJsonResponse(w, doc, http.StatusOK)
	}
}

func catalogCreate[T any, PT interface {
	*T
	model.Component
}](s Server, name string, svc service.Catalog[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc T
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			s.Logger.Debugf("%sCreate: Error decoding JSON, err: %v", name, err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		created, err := svc.Create(r.Context(), doc)
		if err != nil {
			s.writeServiceError(w, name+"Create", err)
			return
		}
		s.writeJsonResponse(w, created, http.StatusCreated)
	}
}

func catalogUpdate[T any, PT interface {
	*T
	model.Component
}](s Server, name string, svc service.Catalog[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc T
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			s.Logger.Debugf("%sUpdate: Error decoding JSON, err: %v", name, err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		PT(&doc).SetComponentID(mux.Vars(r)["id"])
		if err := svc.Update(r.Context(), doc); err != nil {
			s.writeServiceError(w, name+"Update", err)
			return
		}
		s.writeJsonResponse(w, doc, http.StatusOK)
	}
}

func catalogDelete[T any, PT interface {
	*T
	model.Component
}](s Server, name string, svc service.Catalog[T, PT]) http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
			s.writeServiceError(w, name+"Delete", err)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func catalogUploadImage[T any, PT interface {
	*T
	model.Component
}](s Server, name string, svc service.Catalog[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, fh, err := formImage(r)
		if err != nil {
			s.Logger.Debugf("%sUploadImage: Error reading multipart image, err: %v", name, err)
			s.writeErrorResponse(w, "Invalid image upload", http.StatusBadRequest)
			return
		}
		defer func() {
			_ = f.Close()
		}()

		url, err := s.Client.UploadImage(r.Context(), fh.Filename, f)
		if err != nil {
			s.Logger.Errorf("%sUploadImage: Error uploading image to host, err: %v", name, err)
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		if _, err = svc.AttachPhoto(r.Context(), mux.Vars(r)["id"], url); err != nil {
			s.writeServiceError(w, name+"UploadImage", err)
			return
		}
		writePlainText(w, url, http.StatusCreated)
	}
}
