package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"snapfeed/app/apperr"
	"snapfeed/app/services"
	"snapfeed/app/validation"
)

// AuthController handles HTTP requests for signup and login
type AuthController struct {
	auth *services.AuthService
	log  *logrus.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService, log *logrus.Logger) *AuthController {
	return &AuthController{auth: auth, log: log}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles user registration. A duplicate email reports as a field
// error on this surface.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, c.log, apperr.InvalidInput("Invalid JSON body", nil))
		return
	}

	view, err := c.auth.Signup(validation.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if apperr.IsKind(err, apperr.KindConflict) {
		sendError(w, c.log, apperr.InvalidInput("Validation failed.", []apperr.FieldError{
			{Field: "email", Message: "E-Mail address already exist"},
		}))
		return
	}
	if err != nil {
		sendError(w, c.log, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created",
		"userId":  view.ID,
	})
}

// Login handles user authentication. A wrong password reports 422 on this
// surface while an unknown email stays 401.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, c.log, apperr.InvalidInput("Invalid JSON body", nil))
		return
	}

	payload, err := c.auth.Login(req.Email, req.Password)
	if errors.Is(err, services.ErrWrongPassword) {
		sendError(w, c.log, apperr.InvalidInput("Wrong Password", nil))
		return
	}
	if err != nil {
		sendError(w, c.log, err)
		return
	}

	sendJSON(w, http.StatusOK, payload)
}
