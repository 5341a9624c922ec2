package server

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/SviatSloboda/MightyPC-sub001/internal/service"
)

const maxImageSize = 10 << 20

func (s Server) writeJsonResponse(w http.ResponseWriter, response any, statusCode int) {
	if resp, err := json.Marshal(response); err != nil {
		s.Logger.Errorf("Error encoding response: %+v, err: %v", response, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	} else {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(statusCode)
		if _, err = w.Write(resp); err != nil {
			s.Logger.Errorf("Error writing JSON response: %s, err: %v", resp, err)
		}
	}
}

type errorBody struct {
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (s Server) writeErrorResponse(w http.ResponseWriter, message string, status int) {
	s.writeJsonResponse(w, errorBody{
		Message:   message,
		Status:    status,
		Timestamp: time.Now(),
	}, status)
}

// writeServiceError maps typed service errors to the error JSON contract:
// not-found errors become 404, known bad input becomes 400, anything else is
// logged and reported as a generic 400.
func (s Server) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case service.IsNotFound(err):
		s.Logger.Debugf("%s: Not found, err: %v", op, err)
		s.writeErrorResponse(w, errors.Cause(err).Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrNoEmailClaim),
		errors.Is(err, service.ErrBadCompletion):
		s.Logger.Debugf("%s: Bad request, err: %v", op, err)
		s.writeErrorResponse(w, errors.Cause(err).Error(), http.StatusBadRequest)
	default:
		s.Logger.Errorf("%s: err: %v", op, err)
		s.writeErrorResponse(w, "Something went wrong", http.StatusBadRequest)
	}
}

func formImage(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return nil, nil, err
	}
	return r.FormFile("image")
}

func writePlainText(w http.ResponseWriter, body string, statusCode int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}
