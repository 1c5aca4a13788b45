package http

import (
	"github.com/gin-gonic/gin"

	"novacart-support/internal/chat"
	"novacart-support/internal/model"
	"novacart-support/pkg/response"
)

// StartSession godoc
// @Summary     Start a chat session
// @Description Opens a fresh conversation and returns its session ID.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       user_id query string true "User ID from login"
// @Success     200 {object} startResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/session/start [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.StartSession(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newStartResp(output))
}

// Chat godoc
// @Summary     Send a chat message
// @Description Routes the message through the support agent and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       user_id    query string  true "User ID from login"
// @Param       session_id query string  true "Session ID from session start"
// @Param       body       body  turnReq true "User message"
// @Success     200 {object} turnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessTurn(ctx, sc, req.toInput(c.Query("session_id")))
	if err != nil {
		switch err {
		case chat.ErrEmptyMessage, chat.ErrMissingSession:
			response.Error(c, err, nil)
		default:
			h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, h.newTurnResp(output))
}

// processScope resolves the acting user from the request.
// The user ID comes from the frontend after login.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	userID := c.Query("user_id")
	if userID == "" {
		return model.Scope{}, errUserIDRequired
	}
	return model.Scope{UserID: userID}, nil
}
