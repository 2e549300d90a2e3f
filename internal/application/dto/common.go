package dto

import "github.com/shopspring/decimal"

// Montos como números JSON (el frontend no parsea strings).
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP. Success siempre es false; lo espera el frontend.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"` // campos faltantes o inválidos
}
