package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/baharkarakas/expense-tracker/internal/display"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// WebHandler serves the browser page and its form posts. Every post redirects
// back to the page, which re-renders with empty input fields.
type WebHandler struct {
	L     Ledger
	Money display.Money
}

func NewWebHandler(l Ledger, m display.Money) *WebHandler {
	return &WebHandler{L: l, Money: m}
}

type pageRow struct {
	Reason string
	Amount string
	Credit bool
	Method string
	Date   string
}

type pageData struct {
	Total        string
	Cash         string
	Online       string
	Transactions []pageRow
}

func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	snap := h.L.Snapshot()
	data := pageData{
		Total:  h.Money.Format(snap.Total()),
		Cash:   h.Money.Format(snap.Cash),
		Online: h.Money.Format(snap.Online),
	}
	for _, tx := range snap.Transactions {
		data.Transactions = append(data.Transactions, pageRow{
			Reason: tx.Reason,
			Amount: h.Money.Exact(tx.Amount),
			Credit: tx.IsCredit(),
			Method: string(tx.Method),
			Date:   tx.Date,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page", "err", err)
	}
}

func (h *WebHandler) SetInitialAmount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	if _, err := h.L.SetInitialAmount(r.Context(), r.FormValue("initial_amount")); err != nil {
		slog.ErrorContext(r.Context(), "failed to set initial amount", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AddTransaction takes the pressed button as op=<kind>:<method>, or explicit
// kind and method fields.
func (h *WebHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	kindText, methodText := r.FormValue("kind"), r.FormValue("method")
	if op := r.FormValue("op"); op != "" {
		kindText, methodText, _ = strings.Cut(op, ":")
	}
	kind, method, errs := parseIntent(kindText, methodText)
	if errs != nil {
		http.Error(w, errs.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.L.AddTransaction(r.Context(), kind, method, r.FormValue("reason"), r.FormValue("amount")); err != nil {
		slog.ErrorContext(r.Context(), "failed to add transaction", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *WebHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.L.ClearAllData(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "failed to clear data", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
