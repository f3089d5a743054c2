package model

// CreateClientRequest defines the payload for registering a new client.
// It includes validation tags to ensure data integrity at the entry point.
type CreateClientRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,e164"`
	Address   string `json:"address" validate:"required,max=255"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Pin       string `json:"pin" validate:"required,max=255"`
}

// CreateAccountRequest defines the payload for opening a new account.
// The account number is generated server side.
type CreateAccountRequest struct {
	ClientID int    `json:"client_id" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3,alpha"`
}

// InternalTransferRequest moves money between two accounts held by this
// institution. Amount is expressed in the target account's currency.
type InternalTransferRequest struct {
	TargetAccountNumber string  `json:"target_account_number" validate:"required"`
	Amount              float64 `json:"amount" validate:"required,gt=0"`
}

// ExternalTransferRequest moves money to an IBAN outside this institution.
// Amount is expressed in the source account's currency.
type ExternalTransferRequest struct {
	TargetAccountIban string  `json:"target_account_iban" validate:"required,iban_format"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Currency          string  `json:"currency" validate:"required,len=3,alpha"`
}

type CreateBranchRequest struct {
	Zip     string `json:"zip" validate:"required,max=50"`
	City    string `json:"city" validate:"required,max=255"`
	Address string `json:"address" validate:"required,max=255"`
}

type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	BranchID int    `json:"branch_id" validate:"required"`
}
