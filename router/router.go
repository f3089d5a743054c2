package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"bank-backoffice-api/handler"
)

func NewRouter(
	clientHandler *handler.ClientHandler,
	accountHandler *handler.AccountHandler,
	transferHandler *handler.TransferHandler,
	transactionHandler *handler.TransactionHandler,
	branchHandler *handler.BranchHandler,
	employeeHandler *handler.EmployeeHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	api := http.NewServeMux()

	api.Handle("GET /api/clients", handler.ErrorHandlingMiddleware(clientHandler.ListClients))
	api.Handle("POST /api/clients", handler.ErrorHandlingMiddleware(clientHandler.CreateClient))
	api.Handle("GET /api/clients/{id}", handler.ErrorHandlingMiddleware(clientHandler.GetClient))
	api.Handle("DELETE /api/clients/{id}", handler.ErrorHandlingMiddleware(clientHandler.DeleteClient))

	api.Handle("GET /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
	api.Handle("POST /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
	api.Handle("GET /api/accounts/{id}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))
	api.Handle("DELETE /api/accounts/{id}", handler.ErrorHandlingMiddleware(accountHandler.DeleteAccount))
	api.Handle("POST /api/accounts/{id}/internal-transaction", handler.ErrorHandlingMiddleware(transferHandler.CreateInternalTransfer))
	api.Handle("POST /api/accounts/{id}/external-transaction", handler.ErrorHandlingMiddleware(transferHandler.CreateExternalTransfer))

	api.Handle("GET /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))

	api.Handle("GET /api/branches", handler.ErrorHandlingMiddleware(branchHandler.ListBranches))
	api.Handle("POST /api/branches", handler.ErrorHandlingMiddleware(branchHandler.CreateBranch))
	api.Handle("GET /api/branches/{id}", handler.ErrorHandlingMiddleware(branchHandler.GetBranch))
	api.Handle("DELETE /api/branches/{id}", handler.ErrorHandlingMiddleware(branchHandler.DeleteBranch))

	api.Handle("GET /api/employees", handler.ErrorHandlingMiddleware(employeeHandler.ListEmployees))
	api.Handle("POST /api/employees", handler.ErrorHandlingMiddleware(employeeHandler.CreateEmployee))
	api.Handle("GET /api/employees/{id}", handler.ErrorHandlingMiddleware(employeeHandler.GetEmployee))
	api.Handle("DELETE /api/employees/{id}", handler.ErrorHandlingMiddleware(employeeHandler.DeleteEmployee))

	mux.Handle("/api/", handler.AuthMiddleware(api))

	return mux
}
