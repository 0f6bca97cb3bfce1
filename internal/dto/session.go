package dto

import "talentboard/internal/pkg/request"

// 登入只承載顯示身分，核心沒有使用者資料庫
type LoginDto struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Avatar string `json:"avatar,omitempty" binding:"omitempty,url"`
}

func (LoginDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":  "name is required",
		"Email.required": "email is required",
		"Email.email":    "email format is invalid",
		"Avatar.url":     "avatar must be a URL",
	}
}

type SessionResponseDto struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
