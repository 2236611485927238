package controllers

import (
	"errors"
	"net/http"

	"luxelane/middleware"
	"luxelane/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Sessions *services.SessionManager
	Tokens   *services.TokenService
}

func NewAuthController(sessions *services.SessionManager, tokens *services.TokenService) *AuthController {
	return &AuthController{Sessions: sessions, Tokens: tokens}
}

// CreateSession opens a fresh application session and returns the bearer
// token that binds the client to it.
func (ac *AuthController) CreateSession(c *gin.Context) {
	session := ac.Sessions.Create()
	token, err := ac.Tokens.IssueSessionToken(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"token":      token,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login runs the mock login: any non-empty credential pair succeeds.
func (ac *AuthController) Login(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in both fields."})
		return
	}

	state, err := session.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in both fields."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, state)
}

func (ac *AuthController) Logout(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, session.Logout())
}
