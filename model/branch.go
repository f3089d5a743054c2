package model

type Branch struct {
	ID      int    `json:"id"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
}
