package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/NotAnsar/orava-api/pkg/response"

	"go.uber.org/zap"
)

// Only a single SELECT statement is allowed through; anything that could
// mutate state is rejected before touching the database.
var selectOnly = regexp.MustCompile(`(?is)^\s*select\s+.*$`)

type executeQueryPayload struct {
	Query string `json:"query"`
}

func (h *Handler) QueryExecute(w http.ResponseWriter, r *http.Request) {
	var payload executeQueryPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	query := strings.TrimSpace(payload.Query)
	if query == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Query is required")
		return
	}
	if !selectOnly.MatchString(query) || strings.Contains(query, ";") {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Only SELECT queries are allowed")
		return
	}

	rows, err := h.Store.DB.Query(r.Context(), query)
	if err != nil {
		h.Logger.Warn("ad-hoc query failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "QUERY_ERROR", "Query execution failed")
		return
	}
	defer rows.Close()

	columns := make([]string, 0, len(rows.FieldDescriptions()))
	for _, fd := range rows.FieldDescriptions() {
		columns = append(columns, fd.Name)
	}

	result := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read query results")
			return
		}
		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = values[i]
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		h.Logger.Warn("ad-hoc query failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "QUERY_ERROR", "Query execution failed")
		return
	}

	response.Success(w, result)
}
