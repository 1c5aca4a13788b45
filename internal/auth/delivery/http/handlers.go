package http

import (
	"github.com/gin-gonic/gin"

	"novacart-support/internal/auth"
	"novacart-support/pkg/response"
)

// Signup godoc
// @Summary     Register a new user
// @Description Creates a user account and returns the generated user ID.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request / username exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		if err == auth.ErrUsernameExists {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Signup: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Checks the credentials and returns the user ID.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newAuthResp(output))
}
