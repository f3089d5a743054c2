package model

import "time"

type Client struct {
	ID        int       `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	BirthDate time.Time `json:"birth_date"`
	Pin       string    `json:"pin"`
	CreatedAt time.Time `json:"created_at"`
}
