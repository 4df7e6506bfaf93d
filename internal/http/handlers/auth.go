package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the operator payload returned on login.
type AuthUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		user         AuthUser
		passwordHash string
	)

	err := intconfig.DB.QueryRow(`
		SELECT id, name, email, password_hash, role, status
		FROM users
		WHERE email = ?
	`, req.Email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&passwordHash,
		&user.Role,
		&user.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to query user", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(JWTSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var exists int
	err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, req.Email).Scan(&exists)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check user", err)
		return
	}
	if exists > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}

	role := string(domain.ParseRole(req.Role))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO users (name, email, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, 'active', NOW(), NOW())
	`, req.Name, req.Email, string(hash), role)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store user", err)
		return
	}

	id, _ := res.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{
		"message": "registered",
		"user": gin.H{
			"id":     id,
			"name":   req.Name,
			"email":  req.Email,
			"role":   role,
			"status": "active",
		},
	})
}
