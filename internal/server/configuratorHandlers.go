package server

import (
	"encoding/json"
	"net/http"
)

// configuratorRecommend accepts a two-element array of free-text
// preferences and returns the recommended component-ID set.
func (s Server) configuratorRecommend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var prefs []string
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			s.Logger.Debugf("configuratorRecommend: Error decoding JSON, err: %v", err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(prefs) != 2 {
			s.Logger.Debugf("configuratorRecommend: Expected 2 preferences, got %d", len(prefs))
			s.writeErrorResponse(w, "Expected exactly two preference strings", http.StatusBadRequest)
			return
		}

		ids, err := s.Configurator.Recommend(r.Context(), prefs[0], prefs[1])
		if err != nil {
			s.writeServiceError(w, "configuratorRecommend", err)
			return
		}
		s.writeJsonResponse(w, ids, http.StatusOK)
	}
}
