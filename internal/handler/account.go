package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Messages returned to the web client. They are user-facing copy.
const (
	msgSignupDone   = "회원 가입이 완료되었습니다."
	msgLoginSuccess = "로그인이 완료되었습니다."
	msgLoginFailed  = "로그인에 실패했습니다."
)

type signupRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status       string `json:"status"`
	Username     string `json:"username,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Message      string `json:"message"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// SignUp handles POST /sign_up/.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}
	if !validEmail(req.Email) {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"email": {domain.MsgInvalidEmail}})
		return
	}

	in := domain.Signup{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if _, err := s.accounts.Signup(r.Context(), in); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		s.writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": msgSignupDone})
}

// validEmail reports whether s is blank or a well-formed address. Email is
// optional, so a form that submits an empty field still signs up.
func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	quoted, err := json.Marshal(s)
	if err != nil {
		return false
	}
	var e openapi_types.Email
	return e.UnmarshalJSON(quoted) == nil
}

// SignIn handles POST /sign_in/. A missing body is treated like wrong
// credentials rather than a malformed request.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}

	sess, err := s.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.log.ErrorContext(r.Context(), "login failed", "username", req.Username)
			writeJSON(w, http.StatusUnauthorized, loginResponse{Status: "fail", Message: msgLoginFailed})
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Status:       "success",
		Username:     sess.Username,
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		Message:      msgLoginSuccess,
	})
}

// RefreshToken handles POST /token/refresh/ and returns a new access token.
func (s *Server) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}
	if req.Refresh == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"refresh": {domain.MsgRequired}})
		return
	}

	access, err := s.accounts.Refresh(r.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "Token is invalid or expired",
				"code":   "token_not_valid",
			})
			return
		}
		s.writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}
