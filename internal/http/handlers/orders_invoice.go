package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/NotAnsar/orava-api/internal/store"
	"github.com/NotAnsar/orava-api/pkg/response"

	"github.com/phpdave11/gofpdf"
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func sanitizeFilename(s string) string {
	return filenameSanitizer.ReplaceAllString(strings.TrimSpace(s), "_")
}

func (h *Handler) OrderInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.Store.OrderByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Order")
		return
	}

	buf, err := renderInvoicePDF(order)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate invoice")
		return
	}

	filename := fmt.Sprintf("invoice_%s.pdf", sanitizeFilename(order.ID.String()))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func renderInvoicePDF(order store.Order) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 9, "Invoice", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Order %s", order.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, order.CreatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Status: %s", order.Status), "", 1, "C", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Billed To", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	if order.UserName != "" {
		pdf.CellFormat(0, 5, order.UserName, "", 1, "L", false, 0, "")
	}
	if order.UserEmail != "" {
		pdf.CellFormat(0, 5, order.UserEmail, "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Items", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, item := range order.Items {
		pdf.CellFormat(120, 5, fmt.Sprintf("%dx %s", item.Quantity, item.ProductName), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, item.Subtotal().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 7, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, order.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
