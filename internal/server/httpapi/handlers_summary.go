package httpapi

import (
	"net/http"
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/money"
)

type summaryResponse struct {
	TotalIncome      money.Money `json:"total_income"`
	TotalExpenses    money.Money `json:"total_expenses"`
	Balance          money.Money `json:"balance"`
	TransactionCount int64       `json:"transaction_count"`
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	now := time.Now().UTC()

	year, err := queryInt(query.Get("year"), now.Year())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "year must be an integer")
		return
	}
	month, err := queryInt(query.Get("month"), int(now.Month()))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "month must be an integer")
		return
	}

	user := userFrom(r.Context())
	summary, err := s.transactions.MonthlySummary(r.Context(), user.ID, year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summaryResponse{
		TotalIncome:      summary.TotalIncome,
		TotalExpenses:    summary.TotalExpenses,
		Balance:          summary.Balance,
		TransactionCount: summary.Count,
	})
}
