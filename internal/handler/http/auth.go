package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/service"
	"github.com/MKhiriev/series-catalog/internal/utils"
	"github.com/MKhiriev/series-catalog/models"
)

// tokenRequest is the JSON form of a login. Username is accepted as an alias
// of Email, the way password-flow clients name it.
type tokenRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := credentialsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("token issued")
	utils.WriteJSON(w, models.NewAccessToken(token), http.StatusOK)
}

// credentialsFromRequest reads login credentials from either an
// application/x-www-form-urlencoded body or a JSON body.
func credentialsFromRequest(r *http.Request) (models.Credentials, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			return models.Credentials{}, service.ErrInvalidCredentials
		}
		email := r.PostForm.Get("username")
		if email == "" {
			email = r.PostForm.Get("email")
		}
		return models.Credentials{Email: email, Password: r.PostForm.Get("password")}, nil
	}

	var req tokenRequest
	if err := decodeJSON(r, &req); err != nil {
		return models.Credentials{}, err
	}
	if req.Email == "" {
		req.Email = req.Username
	}
	return models.Credentials{Email: req.Email, Password: req.Password}, nil
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
