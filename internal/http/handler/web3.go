package handler

import (
	"fmt"
	"net/http"

	"paysched/internal/core"
	"paysched/internal/http/handler/middleware"
	"paysched/internal/http/payload"

	"go.uber.org/zap"
)

var (
	GetBalance         = "GET /api/v1/web3/getBalance"
	GetFee             = "GET /api/v1/web3/fee"
	CreateTransaction  = "POST /api/v1/web3/transaction"
	GetTransactions    = "GET /api/v1/web3/transaction"
	GetHistory         = "GET /api/v1/web3/transaction/history"
	ExecuteTransaction = "POST /api/v1/web3/executeTransaction"
	InstantTransaction = "POST /api/v1/web3/instantTransaction"
)

type Web3Handler struct {
	responder
	payments PaymentService
	history  HistoryService
}

func NewWeb3Handler(logger *zap.SugaredLogger, requestValidator RequestValidator, paymentService PaymentService, historyService HistoryService) *Web3Handler {
	return &Web3Handler{
		responder: responder{
			logs:             logger,
			requestValidator: requestValidator,
		},
		payments: paymentService,
		history:  historyService,
	}
}

func (h *Web3Handler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	query := payload.BalanceQuery{
		Address: r.URL.Query().Get("address"),
	}
	if !h.validateQuery(w, r, GetBalance, "Could not retrieve balance", query) {
		return
	}

	balance, err := h.payments.GetBalance(r.Context(), query.Address)
	if err != nil {
		h.fail(w, r, GetBalance, "Could not retrieve balance", err)
		return
	}

	resp := map[string]string{
		"address": query.Address,
		"balance": balance.String(),
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

func (h *Web3Handler) HandleGetFee(w http.ResponseWriter, r *http.Request) {
	query := payload.FeeQuery{
		Amount: r.URL.Query().Get("amount"),
	}
	if !h.validateQuery(w, r, GetFee, "Could not quote fee", query) {
		return
	}

	amount, err := query.ToAmount()
	if err != nil {
		h.badRequest(w, r, GetFee, "Could not quote fee", err)
		return
	}

	fee, err := h.payments.QuoteFee(r.Context(), amount)
	if err != nil {
		h.fail(w, r, GetFee, "Could not quote fee", err)
		return
	}

	resp := map[string]string{
		"amount": amount.String(),
		"fee":    fee.String(),
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

func (h *Web3Handler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caller(w, r, CreateTransaction)
	if !ok {
		return
	}

	var req payload.ScheduleRequest
	if !h.decode(w, r, CreateTransaction, "Could not schedule transaction", &req) {
		return
	}

	scheduleReq, err := req.ToCore()
	if err != nil {
		h.badRequest(w, r, CreateTransaction, "Could not schedule transaction", err)
		return
	}

	h.logs.Infow("schedule request received",
		"user_id", id.UserID,
		"recipient", scheduleReq.RecipientAddress,
		"amount", scheduleReq.Amount.String(),
		"handler", CreateTransaction,
		"request_id", middleware.RequestIDFrom(r.Context()))

	result, err := h.payments.Schedule(r.Context(), id, scheduleReq)
	if err != nil {
		h.fail(w, r, CreateTransaction, "Could not schedule transaction", err)
		return
	}

	h.respond(w, Response{
		Message: "Transaction scheduled",
		Data:    result,
	}, http.StatusCreated,
		middleware.RequestIDFrom(r.Context()))
}

func (h *Web3Handler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caller(w, r, GetTransactions)
	if !ok {
		return
	}

	values := r.URL.Query()
	query := payload.RangeQuery{
		Start: values.Get("start"),
		End:   values.Get("end"),
	}
	if !h.validateQuery(w, r, GetTransactions, "Could not retrieve transactions", query) {
		return
	}

	rng, err := query.ToRange()
	if err != nil {
		h.badRequest(w, r, GetTransactions, "Could not retrieve transactions", err)
		return
	}

	transactions, err := h.history.ListTransactions(r.Context(), id, rng)
	if err != nil {
		h.fail(w, r, GetTransactions, "Could not retrieve transactions", err)
		return
	}

	resp := map[string][]core.TransactionSummary{
		"transactions": transactions,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

func (h *Web3Handler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caller(w, r, GetHistory)
	if !ok {
		return
	}

	query := payload.HistoryQuery{
		Limit: r.URL.Query().Get("limit"),
	}
	if !h.validateQuery(w, r, GetHistory, "Could not retrieve history", query) {
		return
	}

	limit, err := query.ToLimit()
	if err != nil {
		h.badRequest(w, r, GetHistory, "Could not retrieve history", fmt.Errorf("parse limit: %w", err))
		return
	}

	transactions, err := h.history.ListRecentTransactions(r.Context(), id, limit)
	if err != nil {
		h.fail(w, r, GetHistory, "Could not retrieve history", err)
		return
	}

	resp := map[string][]core.TransactionSummary{
		"transactions": transactions,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

func (h *Web3Handler) HandleExecuteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caller(w, r, ExecuteTransaction)
	if !ok {
		return
	}

	var req payload.ExecuteRequest
	if !h.decode(w, r, ExecuteTransaction, "Could not execute transaction", &req) {
		return
	}

	result, err := h.payments.Execute(r.Context(), id, req.ID)
	if err != nil {
		h.fail(w, r, ExecuteTransaction, "Could not execute transaction", err)
		return
	}

	h.respond(w, Response{
		Message: "Transaction executed",
		Data:    result,
	}, http.StatusOK,
		middleware.RequestIDFrom(r.Context()))
}

func (h *Web3Handler) HandleInstantTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caller(w, r, InstantTransaction)
	if !ok {
		return
	}

	var req payload.InstantRequest
	if !h.decode(w, r, InstantTransaction, "Could not send transaction", &req) {
		return
	}

	transferReq, err := req.ToCore()
	if err != nil {
		h.badRequest(w, r, InstantTransaction, "Could not send transaction", err)
		return
	}

	txHash, err := h.payments.InstantTransfer(r.Context(), id, transferReq)
	if err != nil {
		h.fail(w, r, InstantTransaction, "Could not send transaction", err)
		return
	}

	resp := map[string]string{
		"transactionHash": txHash,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}
