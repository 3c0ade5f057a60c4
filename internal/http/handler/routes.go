package handler

import "net/http"

func RegisterRoutes(mux *http.ServeMux, auth *AuthHandler, web3 *Web3Handler) {
	mux.HandleFunc(RegisterToken, auth.HandleTokenRegister)
	mux.HandleFunc(LoginToken, auth.HandleTokenLogin)
	mux.HandleFunc(RegisterSession, auth.HandleSessionRegister)
	mux.HandleFunc(LoginSession, auth.HandleSessionLogin)
	mux.HandleFunc(Logout, auth.HandleLogout)
	mux.HandleFunc(LoginWeb3, auth.HandleWeb3Login)
	mux.HandleFunc(CurrentUser, auth.HandleCurrentUser)

	mux.HandleFunc(GetBalance, web3.HandleGetBalance)
	mux.HandleFunc(GetFee, web3.HandleGetFee)
	mux.HandleFunc(CreateTransaction, web3.HandleCreateTransaction)
	mux.HandleFunc(GetTransactions, web3.HandleGetTransactions)
	mux.HandleFunc(GetHistory, web3.HandleGetHistory)
	mux.HandleFunc(ExecuteTransaction, web3.HandleExecuteTransaction)
	mux.HandleFunc(InstantTransaction, web3.HandleInstantTransaction)
}
