package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

// pathUserID returns the {userId} path variable after checking it matches
// the authenticated identity. A mismatch writes 403 and returns false.
func (s Server) pathUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	uc, err := getUserContext(r.Context())
	if err != nil {
		s.Logger.Errorf("pathUserID: Error getting userContext, err: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return "", false
	}
	userID := mux.Vars(r)["userId"]
	if uc.user.ID != userID {
		s.Logger.Debugf("pathUserID: UserID: %s tried to act on User with ID: %s", uc.user.ID, userID)
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return "", false
	}
	return userID, true
}

func (s Server) basketList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		items, err := s.Basket.Items(r.Context(), userID)
		if err != nil {
			s.writeServiceError(w, "basketList", err)
			return
		}
		s.writeJsonResponse(w, items, http.StatusOK)
	}
}

func (s Server) basketAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		var item model.Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			s.Logger.Debugf("basketAdd: Error decoding JSON, err: %v", err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		added, err := s.Basket.AddItem(r.Context(), userID, item)
		if err != nil {
			s.writeServiceError(w, "basketAdd", err)
			return
		}
		s.writeJsonResponse(w, added, http.StatusCreated)
	}
}

func (s Server) basketClear() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		if err := s.Basket.Clear(r.Context(), userID); err != nil {
			s.writeServiceError(w, "basketClear", err)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) basketTotal() http.HandlerFunc {
	type response struct {
		TotalPrice model.Price `json:"totalPrice"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		total, err := s.Basket.TotalPrice(r.Context(), userID)
		if err != nil {
			s.writeServiceError(w, "basketTotal", err)
			return
		}
		s.writeJsonResponse(w, response{TotalPrice: total}, http.StatusOK)
	}
}

func (s Server) basketRemoveItem() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		itemID := mux.Vars(r)["itemId"]
		if err := s.Basket.RemoveItem(r.Context(), userID, itemID); err != nil {
			s.writeServiceError(w, "basketRemoveItem", err)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}
