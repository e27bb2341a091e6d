package handler

import (
	"net/http"

	"github.com/itchan-dev/boards/internal/api"
	"github.com/itchan-dev/boards/internal/domain"
	mw "github.com/itchan-dev/boards/internal/middleware"
	"github.com/itchan-dev/boards/internal/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body api.CredentialsRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.auth.Signup(r.Context(), domain.Credentials{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.SignupResponse{Id: id, Message: "Created. You can login now"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.CredentialsRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(r.Context(), domain.Credentials{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     mw.AccessTokenCookie,
		Value:    accessToken,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, http.StatusOK, api.LoginResponse{Message: "You logged in", AccessToken: accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     mw.AccessTokenCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, http.StatusOK, api.LogoutResponse{Message: "You logged out"})
}
