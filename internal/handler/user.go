package handler

import (
	"errors"

	"github.com/abhishek622/journalMin/internal/repository"
	"github.com/abhishek622/journalMin/pkg"
	"github.com/abhishek622/journalMin/pkg/model"
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
)

// SignUp creates a new user
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
	}
	if err := h.Repo.User.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			response.Conflict(c, "email already registered")
			return
		}
		h.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		response.InternalError(c, "could not create user")
		return
	}

	response.Created(c, model.UserRes{UserID: user.UserID, Email: user.Email, Name: user.Name})
}

// Login verifies credentials and returns an access token
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.Repo.User.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.Logger.Sugar().Warnw("login user not found", "email", req.Email, "err", err)
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "email", req.Email)
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, claims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, h.TokenTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.LoginUserRes{
		AccessToken:          token,
		AccessTokenExpiresAt: claims.ExpiresAt.Time,
		User:                 model.UserRes{UserID: user.UserID, Email: user.Email, Name: user.Name},
	})
}

// Me returns the current user profile
func (h *Handler) Me(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	user, err := h.Repo.User.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Unauthorized(c, "")
		return
	}

	response.OK(c, model.UserRes{UserID: user.UserID, Name: user.Name, Email: user.Email})
}
