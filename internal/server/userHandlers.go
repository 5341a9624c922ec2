package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pkg/errors"

	"github.com/SviatSloboda/MightyPC-sub001/internal/service"
)

func (s Server) userRegister() http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("userRegister: Error decoding JSON, err: %v", err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		u, err := s.Users.RegisterWithPassword(r.Context(), req.Email, req.Password)
		if err != nil {
			s.writeServiceError(w, "userRegister", err)
			return
		}
		s.writeJsonResponse(w, u, http.StatusCreated)
	}
}

func (s Server) userLogin() http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type response struct {
		SessionToken string             `json:"sessionToken"`
		User         service.PublicUser `json:"user"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("userLogin: Error decoding JSON, err: %v", err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		u, err := s.Users.VerifyPassword(r.Context(), req.Email, req.Password)
		if err != nil {
			s.Logger.Debugf("userLogin: Error verifying credentials, err: %v", err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		lt, tokenHash, err := s.createSessionTokenAndHash(u.ID)
		if err != nil {
			s.Logger.Errorf("userLogin: Error creating session token for User, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if err = s.Users.StoreSessionToken(r.Context(), u.ID, tokenHash); err != nil {
			s.writeServiceError(w, "userLogin", err)
			return
		}
		pu, err := s.Users.Get(r.Context(), u.ID)
		if err != nil {
			s.writeServiceError(w, "userLogin", err)
			return
		}
		s.writeJsonResponse(w, response{SessionToken: lt, User: pu}, http.StatusOK)
	}
}

// userOAuthLogin accepts an ID token signed by the external identity
// provider, verifies it against the provider's JWKS, and logs the carried
// email in, creating the account on first login.
func (s Server) userOAuthLogin() http.HandlerFunc {
	type request struct {
		IDToken string `json:"idToken"`
	}
	type response struct {
		SessionToken string             `json:"sessionToken"`
		User         service.PublicUser `json:"user"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if s.OAuthKeys == nil {
			s.Logger.Error("userOAuthLogin: OAuth login requested but no JWKS configured")
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}

		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("userOAuthLogin: Error decoding JSON, err: %v", err)
			s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		token, err := jwt.Parse([]byte(req.IDToken),
			jwt.WithKeySet(s.OAuthKeys),
			jwt.WithValidate(true),
			jwt.WithIssuer(s.OAuthIssuer),
		)
		if err != nil {
			s.Logger.Debugf("userOAuthLogin: Failed to validate ID token, err: %v", err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		email, _ := token.Get("email")
		emailStr, _ := email.(string)
		picture, _ := token.Get("picture")
		pictureStr, _ := picture.(string)

		u, err := s.Users.LoginOrCreate(r.Context(), emailStr, pictureStr)
		if err != nil {
			if errors.Is(err, service.ErrNoEmailClaim) {
				s.Logger.Debugf("userOAuthLogin: ID token carries no usable email, err: %v", err)
				w.WriteHeader(http.StatusNoContent)
				return
			}
			s.writeServiceError(w, "userOAuthLogin", err)
			return
		}

		lt, tokenHash, err := s.createSessionTokenAndHash(u.ID)
		if err != nil {
			s.Logger.Errorf("userOAuthLogin: Error creating session token for User, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if err = s.Users.StoreSessionToken(r.Context(), u.ID, tokenHash); err != nil {
			s.writeServiceError(w, "userOAuthLogin", err)
			return
		}
		pu, err := s.Users.Get(r.Context(), u.ID)
		if err != nil {
			s.writeServiceError(w, "userOAuthLogin", err)
			return
		}
		s.writeJsonResponse(w, response{SessionToken: lt, User: pu}, http.StatusOK)
	}
}

func (s Server) userInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("userInfo: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		pu, err := s.Users.Get(r.Context(), uc.user.ID)
		if err != nil {
			s.writeServiceError(w, "userInfo", err)
			return
		}
		s.writeJsonResponse(w, pu, http.StatusOK)
	}
}

func (s Server) userLogout() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("userLogout: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if err = s.Users.StoreSessionToken(r.Context(), uc.user.ID, nil); err != nil {
			s.writeServiceError(w, "userLogout", err)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) userDelete() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("userDelete: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		userID := mux.Vars(r)["userId"]
		if uc.user.ID != userID {
			s.Logger.Debugf("userDelete: UserID: %s tried to delete User with ID: %s", uc.user.ID, userID)
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		if err = s.Users.Delete(r.Context(), userID); err != nil {
			s.writeServiceError(w, "userDelete", err)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) userPhotoUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("userPhotoUpload: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		f, fh, err := formImage(r)
		if err != nil {
			s.Logger.Debugf("userPhotoUpload: Error reading multipart image, err: %v", err)
			s.writeErrorResponse(w, "Invalid image upload", http.StatusBadRequest)
			return
		}
		defer func() {
			_ = f.Close()
		}()

		url, err := s.Client.UploadImage(r.Context(), fh.Filename, f)
		if err != nil {
			s.Logger.Errorf("userPhotoUpload: Error uploading image to host, err: %v", err)
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		if err = s.Users.AttachPhoto(r.Context(), uc.user.ID, url); err != nil {
			s.writeServiceError(w, "userPhotoUpload", err)
			return
		}
		writePlainText(w, url, http.StatusCreated)
	}
}
