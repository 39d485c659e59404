package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"donation-service/internal/entity"
	"donation-service/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	uploads     *Uploader
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(authService *service.AuthService, uploads *Uploader) *AuthHandler {
	return &AuthHandler{authService: authService, uploads: uploads}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddNewUser registers a user --> POST /addNewUser (multipart, optional photo)
func (h *AuthHandler) AddNewUser(c echo.Context) error {
	return h.register(c, entity.SpaceUser)
}

// AddNewAdmin registers an admin --> POST /addNewAdmin (multipart, optional photo)
func (h *AuthHandler) AddNewAdmin(c echo.Context) error {
	return h.register(c, entity.SpaceAdmin)
}

func (h *AuthHandler) register(c echo.Context, space entity.Space) error {
	input := service.RegisterInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Role:     c.FormValue("role"),
		Password: c.FormValue("password"),
	}

	if file, err := c.FormFile("photo"); err == nil {
		filename, err := h.uploads.Save(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to store photo"})
		}
		input.Photo = filename
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	identity, err := h.authService.Register(ctx, space, input)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, identity)
}

// UserLogin verifies user credentials --> POST /userLogin
func (h *AuthHandler) UserLogin(c echo.Context) error {
	return h.login(c, entity.SpaceUser)
}

// AdminLogin verifies admin credentials --> POST /adminLogin
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, entity.SpaceAdmin)
}

func (h *AuthHandler) login(c echo.Context, space entity.Space) error {
	req := loginRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, identity, err := h.authService.Login(ctx, space, req.Email, req.Password)
	if err != nil {
		return httpError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    identity,
	})
}

// Logout clears the session cookie. Tokens are stateless server-side; the
// Redis mirror is dropped best-effort when the cookie still decodes.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie("token"); err == nil {
		if claims, err := h.authService.VerifyToken(cookie.Value); err == nil {
			ctx, cancel := requestContext(c)
			defer cancel()
			_ = h.authService.Logout(ctx, entity.SpaceUser, claims.Email)
			_ = h.authService.Logout(ctx, entity.SpaceAdmin, claims.Email)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, map[string]string{"message": "Logout successful"})
}

// GetUsers lists users, newest first --> GET /getUsers
func (h *AuthHandler) GetUsers(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	identities, err := h.authService.ListIdentities(ctx, entity.SpaceUser)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"users": identities})
}

// DeleteUser removes a user --> DELETE /deleteUser/:id
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.authService.DeleteIdentity(ctx, entity.SpaceUser, id); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted"})
}

// UsersCount --> GET /usersCount
func (h *AuthHandler) UsersCount(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	count, err := h.authService.CountIdentities(ctx, entity.SpaceUser)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"users": count})
}
