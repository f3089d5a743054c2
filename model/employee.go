package model

type Employee struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	BranchID int    `json:"branch_id"`
}
