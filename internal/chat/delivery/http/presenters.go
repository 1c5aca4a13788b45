package http

import (
	"novacart-support/internal/chat"
)

// --- Request DTOs ---

type turnReq struct {
	Message string `json:"message" binding:"required"`
}

func (r turnReq) toInput(sessionID string) chat.TurnInput {
	return chat.TurnInput{
		SessionID: sessionID,
		Text:      r.Message,
	}
}

// --- Response DTOs ---

type turnResp struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

func (h *handler) newTurnResp(out chat.TurnOutput) turnResp {
	return turnResp{
		Response:  out.Reply,
		SessionID: out.SessionID,
	}
}

type startResp struct {
	SessionID string `json:"session_id"`
}

func (h *handler) newStartResp(out chat.StartOutput) startResp {
	return startResp{SessionID: out.SessionID}
}
