package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-api/api/dto"
	"blogging-api/api/middleware"
	"blogging-api/services"
)

// RegisterHandler godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Param        request  body  dto.RegisterRequestDTO  true  "Registration payload"
// @Produce      json
// @Success      200  {object}  dto.RegisterResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /users/register [post]
func RegisterHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		userID, err := svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.RegisterResponseDTO{Message: "user registered successfully", UserID: userID})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  OAuth2 password form: username is the email
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Produce      json
// @Success      200  {object}  dto.LoginResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /users/login [post]
func LoginHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("username")
		password := c.PostForm("password")
		if email == "" || password == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "missing_credentials"})
			return
		}

		token, err := svc.Login(c.Request.Context(), email, password)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.LoginResponseDTO{AccessToken: token, TokenType: "bearer"})
	}
}

// GetProfileHandler godoc
// @Summary      Get the caller's profile
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.UserProfileDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/profile [get]
func GetProfileHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.GetProfile(c.Request.Context(), middleware.CallerEmail(c))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler godoc
// @Summary      Update the caller's profile
// @Tags         users
// @Security     BearerAuth
// @Accept       mpfd
// @Param        name           formData  string  false  "Display name"
// @Param        profile_image  formData  file    false  "Profile image"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/profile [put]
func UpdateProfileHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		image, err := readFormFile(c, "profile_image")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_form"})
			return
		}

		if err := svc.UpdateProfile(c.Request.Context(), middleware.CallerEmail(c), c.PostForm("name"), image); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "profile updated successfully"})
	}
}
