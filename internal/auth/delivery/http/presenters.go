package http

import (
	"novacart-support/internal/auth"
)

// --- Request DTOs ---

type credentialsReq struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=1,max=128"`
}

func (r credentialsReq) toInput() auth.CredentialsInput {
	return auth.CredentialsInput{
		Username: r.Username,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type authResp struct {
	UserID string `json:"user_id"`
}

func (h *handler) newAuthResp(out auth.AuthOutput) authResp {
	return authResp{UserID: out.UserID}
}
