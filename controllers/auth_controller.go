package controllers

import (
	"net/http"

	"sewakos-backend/apperr"
	"sewakos-backend/services"
	"sewakos-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Auth: svc}
}

func (ac *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("username, email and password are required"))
		return
	}
	user, err := ac.Auth.Register(in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("username and password are required"))
		return
	}
	token, user, err := ac.Auth.Login(in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"token": token, "user": user})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	user, err := ac.Auth.Profile(caller.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, user)
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var in services.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("invalid request body"))
		return
	}
	user, err := ac.Auth.UpdateProfile(caller.ID, in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, user)
}
