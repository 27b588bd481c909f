package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/money"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/models"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/services"
	"github.com/gorilla/mux"
)

type createTransactionRequest struct {
	Title       string      `json:"title"`
	Amount      money.Money `json:"amount"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
}

type transactionResponse struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Title       string      `json:"title"`
	Amount      money.Money `json:"amount"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date"`
	CreatedAt   time.Time   `json:"created_at"`
}

func toTransactionResponse(t *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Amount:      t.Amount,
		Type:        string(t.Kind),
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

// parseDate accepts either a full RFC 3339 timestamp or a bare
// calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "date must be RFC 3339 or YYYY-MM-DD")
		return
	}

	user := userFrom(r.Context())
	created, err := s.transactions.Create(r.Context(), user.ID, services.CreateTransactionParams{
		Title:       req.Title,
		Amount:      req.Amount,
		Kind:        models.TransactionKind(req.Type),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toTransactionResponse(created))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	skip, err := queryInt(query.Get("skip"), 0)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "skip must be an integer")
		return
	}
	limit, err := queryInt(query.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "limit must be an integer")
		return
	}

	user := userFrom(r.Context())
	list, err := s.transactions.List(r.Context(), user.ID, skip, limit,
		models.TransactionKind(query.Get("type")))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]transactionResponse, 0, len(list))
	for _, t := range list {
		result = append(result, toTransactionResponse(t))
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	id := mux.Vars(r)["id"]

	deleted, err := s.transactions.Delete(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
