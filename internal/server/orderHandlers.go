package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

func (s Server) orderPlace() http.HandlerFunc {
	type request struct {
		Items []model.Item `json:"items"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("orderPlace: Error decoding JSON, err: %v", err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		order, err := s.Orders.Place(r.Context(), userID, req.Items)
		if err != nil {
			s.writeServiceError(w, "orderPlace", err)
			return
		}
		s.writeJsonResponse(w, order, http.StatusCreated)
	}
}

func (s Server) orderList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		orders, err := s.Orders.List(r.Context(), userID)
		if err != nil {
			s.writeServiceError(w, "orderList", err)
			return
		}
		s.writeJsonResponse(w, orders, http.StatusOK)
	}
}

func (s Server) orderGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		order, err := s.Orders.Get(r.Context(), userID, mux.Vars(r)["orderId"])
		if err != nil {
			s.writeServiceError(w, "orderGet", err)
			return
		}
		s.writeJsonResponse(w, order, http.StatusOK)
	}
}

func (s Server) orderRemove() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		if err := s.Orders.Remove(r.Context(), userID, mux.Vars(r)["orderId"]); err != nil {
			s.writeServiceError(w, "orderRemove", err)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) orderUpdateStatus() http.HandlerFunc {
	type request struct {
		Status model.OrderStatus `json:"status"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("orderUpdateStatus: Error decoding JSON, err: %v", err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		order, err := s.Orders.UpdateStatus(r.Context(), userID, mux.Vars(r)["orderId"], req.Status)
		if err != nil {
			s.writeServiceError(w, "orderUpdateStatus", err)
			return
		}
		s.writeJsonResponse(w, order, http.StatusOK)
	}
}

func (s Server) orderDeleteAll() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.pathUserID(w, r)
		if !ok {
			return
		}
		if err := s.Orders.DeleteAll(r.Context(), userID); err != nil {
			s.writeServiceError(w, "orderDeleteAll", err)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}
