package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/service"
)

type registerRequest struct {
	Login       string `json:"login"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// register creates an account and triggers the verification email.
// A failed send never rolls the account back: the response reports
// email_sent=false and the user recovers through the resend flow.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	u, err := s.auth.Register(c.Request.Context(), service.RegisterInput{
		Login:       req.Login,
		Email:       req.Email,
		Phone:       req.Phone,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	emailSent := true
	if err := s.verif.Send(c.Request.Context(), u); err != nil {
		emailSent = false
		s.log.Warn("verification send failed",
			zap.Int64("user_id", u.ID), zap.Error(err))
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":       toUserView(u),
		"email_sent": emailSent,
	})
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	toks, u, err := s.auth.LoginWithIP(c.Request.Context(), req.Login, req.Password, c.ClientIP())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": toks.AccessToken,
		"expires_at":   toks.ExpiresAt.Format(time.RFC3339),
		"user":         toUserView(u),
	})
}

// verifyEmail consumes a token from the emailed link.
// Both failure modes point the user at the resend flow: an unknown token may
// simply have been superseded by a later send.
func (s *Server) verifyEmail(c *gin.Context) {
	err := s.verif.Confirm(c.Request.Context(), c.Param("token"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"verified": true})
	case errors.Is(err, errs.ErrInvalidToken):
		c.JSON(http.StatusNotFound, gin.H{"error": errs.ErrInvalidToken.Error(), "resend": resendPath})
	case errors.Is(err, errs.ErrTokenExpired):
		c.JSON(http.StatusGone, gin.H{"error": errs.ErrTokenExpired.Error(), "resend": resendPath})
	default:
		respondErr(c, err)
	}
}

type resendRequest struct {
	Email string `json:"email"`
}

func (s *Server) resendVerification(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	err := s.verif.Resend(c.Request.Context(), req.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"sent": true})
	case errors.Is(err, errs.ErrAlreadyVerified):
		c.JSON(http.StatusOK, gin.H{"sent": false, "info": errs.ErrAlreadyVerified.Error()})
	case errors.Is(err, errs.ErrNotFound):
		// hide whether the email is registered
		c.JSON(http.StatusOK, gin.H{"sent": true})
	default:
		respondErr(c, err)
	}
}

// logout is a client-side operation for stateless tokens; the endpoint exists
// so clients have a uniform place to end a session.
func (s *Server) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

func (s *Server) profile(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}
	u, err := s.users.Get(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	p, err := s.verif.Status(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":           toUserView(u),
		"email_verified": p.EmailVerified,
	})
}
