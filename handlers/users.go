package handlers

import (
	"net/http"
	"strings"
	"time"

	"laxmimall-server/database"
	"laxmimall-server/logger"
	"laxmimall-server/models"
	"laxmimall-server/utils"

	"github.com/gin-gonic/gin"
)

// GetUsers lists all account records. This is mock-store behavior carried
// over from the original API; nothing here is an auth design.
func GetUsers(c *gin.Context) {
	users := []models.User{}
	Store.View(func(doc *database.Document) {
		users = append(users, doc.Users...)
	})
	c.JSON(http.StatusOK, users)
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// RegisterUser creates an account. Email uniqueness is enforced here at
// write time, not by any schema constraint.
func RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var created models.User
	err := Store.Update(func(doc *database.Document) error {
		for _, u := range doc.Users {
			if strings.EqualFold(u.Email, email) {
				return errDuplicateEmail
			}
		}

		created = models.User{
			ID:        database.NextID(doc.Users),
			Email:     email,
			Password:  req.Password,
			Name:      req.Name,
			Avatar:    utils.AvatarWithInitials(utils.InitialsFromName(req.Name)),
			CreatedAt: time.Now().Format(time.RFC3339),
		}
		doc.Users = append(doc.Users, created)
		return nil
	})

	if err == errDuplicateEmail {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser checks the credentials against the mock store and issues a
// signed token for the session.
func LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login data"})
		return
	}

	var user models.User
	var found bool
	Store.View(func(doc *database.Document) {
		for _, u := range doc.Users {
			if strings.EqualFold(u.Email, req.Email) {
				user, found = u, true
				return
			}
		}
	})

	if !found || user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := generateToken(user)
	if err != nil {
		logger.Log.Errorw("failed to sign token", "userId", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
