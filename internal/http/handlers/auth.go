package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	intconfig "expenseboard/internal/config"
	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		user         models.User
		passwordHash string
	)
	err := intconfig.DB.QueryRow(`
        SELECT id, name, username, email, phone, password_hash, role, status
        FROM users
        WHERE username = ? OR email = ?
    `, req.Username, req.Username).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Phone,
		&passwordHash,
		&user.Role,
		&user.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusUnauthorized, "wrong username or password", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to query user", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong username or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(JWTSecret())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	RespondOK(c, http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var exists int
	err := intconfig.DB.QueryRow(`
        SELECT COUNT(*)
        FROM users
        WHERE email = ? OR username = ?
    `, req.Email, req.Username).Scan(&exists)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check user", err)
		return
	}
	if exists > 0 {
		RespondError(c, http.StatusBadRequest, "email or username is already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, 'active', NOW(), NOW())
    `, req.Name, req.Username, req.Email, req.Phone, string(hash), domain.RoleUser)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	id, _ := res.LastInsertId()
	RespondOK(c, http.StatusCreated, models.User{
		ID:       id,
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     domain.RoleUser,
		Status:   "active",
	})
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/auth/password-reset-request
//
// Always answers 200 so the endpoint cannot be used to probe which emails
// exist. The reset token is delivered out of band.
func PasswordResetRequest(c *gin.Context) {
	var req passwordResetRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var userID int64
	err := intconfig.DB.QueryRow(`SELECT id FROM users WHERE email = ?`, req.Email).Scan(&userID)
	if err != nil {
		if err != sql.ErrNoRows {
			RespondError(c, http.StatusInternalServerError, "failed to check user", err)
			return
		}
		RespondMessage(c, http.StatusOK, "if the email exists, a reset link was sent")
		return
	}

	token := uuid.NewString()
	if _, err := intconfig.DB.Exec(`
        INSERT INTO password_resets (user_id, token, expires_at, used)
        VALUES (?, ?, ?, 0)
    `, userID, token, time.Now().Add(1*time.Hour)); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create reset token", err)
		return
	}

	RespondMessage(c, http.StatusOK, "if the email exists, a reset link was sent")
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/reset-password
func ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		userID    int64
		expiresAt time.Time
		used      bool
	)
	err := intconfig.DB.QueryRow(`
        SELECT user_id, expires_at, used
        FROM password_resets
        WHERE token = ? LIMIT 1
    `, strings.TrimSpace(req.Token)).Scan(&userID, &expiresAt, &used)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusBadRequest, "invalid reset token", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to check token", err)
		}
		return
	}
	if used || time.Now().After(expiresAt) {
		RespondError(c, http.StatusBadRequest, "reset token expired", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	if _, err := intconfig.DB.Exec(`
        UPDATE users SET password_hash=?, updated_at=NOW() WHERE id=?
    `, string(hash), userID); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update password", err)
		return
	}
	if _, err := intconfig.DB.Exec(`
        UPDATE password_resets SET used=1 WHERE token=?
    `, req.Token); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to consume token", err)
		return
	}

	RespondMessage(c, http.StatusOK, "password updated")
}
