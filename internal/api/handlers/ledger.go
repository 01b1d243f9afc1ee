package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/expense-tracker/internal/api/httpx"
	"github.com/baharkarakas/expense-tracker/internal/api/validate"
	"github.com/baharkarakas/expense-tracker/internal/ledger"
	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/services"
)

// Ledger is the set of intents the presentation layer forwards.
// *services.LedgerService implements it.
type Ledger interface {
	Snapshot() models.Snapshot
	SetInitialAmount(ctx context.Context, value string) (models.Snapshot, error)
	AddTransaction(ctx context.Context, kind models.Kind, method models.Method, reason, amount string) (services.Result, error)
	ClearAllData(ctx context.Context) error
}

// LedgerHandler serves the JSON API.
type LedgerHandler struct {
	L Ledger
}

func NewLedgerHandler(l Ledger) *LedgerHandler {
	return &LedgerHandler{L: l}
}

type ledgerResp struct {
	Cash         json.Number          `json:"cash"`
	Online       json.Number          `json:"online"`
	Total        json.Number          `json:"total"`
	Transactions []models.Transaction `json:"transactions"`
}

func toLedgerResp(s models.Snapshot) ledgerResp {
	txs := s.Transactions
	if txs == nil {
		txs = []models.Transaction{}
	}
	return ledgerResp{
		Cash:         json.Number(s.Cash.String()),
		Online:       json.Number(s.Online.String()),
		Total:        json.Number(s.Total().String()),
		Transactions: txs,
	}
}

// text accepts a JSON string or a bare JSON literal (number, bool) and keeps
// its text, so "500" and 500 reach the ledger the same way.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	*t = text(b)
	return nil
}

func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toLedgerResp(h.L.Snapshot()))
}

type initialAmountReq struct {
	Value text `json:"value"`
}

func (h *LedgerHandler) SetInitialAmount(w http.ResponseWriter, r *http.Request) {
	var req initialAmountReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
		return
	}
	snap, err := h.L.SetInitialAmount(r.Context(), string(req.Value))
	if err != nil {
		storeFailure(w, r, "set initial amount", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLedgerResp(snap))
}

type addTransactionReq struct {
	Kind   string `json:"kind"`
	Method string `json:"method"`
	Reason text   `json:"reason"`
	Amount text   `json:"amount"`
}

type addTransactionResp struct {
	Recorded    bool                `json:"recorded"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
	Ledger      ledgerResp          `json:"ledger"`
}

func (h *LedgerHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req addTransactionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
		return
	}

	kind, method, errs := parseIntent(req.Kind, req.Method)
	if errs != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "invalid transaction", errs)
		return
	}

	res, err := h.L.AddTransaction(r.Context(), kind, method, string(req.Reason), string(req.Amount))
	if err != nil {
		storeFailure(w, r, "add transaction", err)
		return
	}

	resp := addTransactionResp{Recorded: res.Recorded, Ledger: toLedgerResp(res.Ledger)}
	if res.Recorded {
		tx := res.Transaction
		resp.Transaction = &tx
		httpx.WriteJSON(w, http.StatusCreated, resp)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *LedgerHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.L.ClearAllData(r.Context()); err != nil {
		storeFailure(w, r, "clear ledger", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLedgerResp(h.L.Snapshot()))
}

// parseIntent validates the two enum fields only. Reason and amount go to the
// ledger untouched.
func parseIntent(kindText, methodText string) (models.Kind, models.Method, validate.Errs) {
	errs := validate.Collect(
		validate.OneOf("kind", kindText, string(models.KindAdd), string(models.KindSpend)),
		validate.OneOf("method", methodText, "cash", "online"),
	)
	if errs != nil {
		return "", "", errs
	}
	kind, _ := models.ParseKind(kindText)
	method, _ := models.ParseMethod(methodText)
	return kind, method, nil
}

func storeFailure(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, ledger.ErrUnknownKind) || errors.Is(err, ledger.ErrUnknownMethod) {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", err.Error(), nil)
		return
	}
	slog.ErrorContext(r.Context(), op, "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, "store_unavailable", "could not persist ledger", nil)
}
