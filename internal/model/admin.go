package model

import "time"

type Admin struct {
	ID        int64     `json:"-"`
	Login     string    `json:"login"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

type LoginDTO struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenInfo struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}
