package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProcedurePlaceholder é usado quando a linha importada não informa o
// procedimento realizado.
const ProcedurePlaceholder = "Não informado"

// RevenueRecord é um registro de venda persistido. Criado exclusivamente
// pelo importador e nunca atualizado por este subsistema.
type RevenueRecord struct {
	ID                int64     `json:"id"`
	Date              time.Time `json:"date"`
	PatientName       string    `json:"patient_name"`
	ProcedureName     string    `json:"procedure_name"`
	Department        string    `json:"department"`
	Amount            float64   `json:"amount"`
	UserID            *int      `json:"user_id"`
	TeamID            *int      `json:"team_id"`
	Notes             string    `json:"notes"`
	BatchID           string    `json:"batch_id"`
	RegisteredByAdmin bool      `json:"registered_by_admin"`
	CreatedAt         time.Time `json:"created_at"`
}

// ExecutedRecord é um procedimento executado (pago/entregue) persistido.
// É a única entrada do recálculo de RFV.
type ExecutedRecord struct {
	ID                int64     `json:"id"`
	Date              time.Time `json:"date"`
	PatientName       string    `json:"patient_name"`
	ProcedureName     string    `json:"procedure_name"`
	Department        string    `json:"department"`
	Amount            float64   `json:"amount"`
	PatientPhone      string    `json:"patient_phone"`
	PatientEmail      string    `json:"patient_email"`
	Origin            string    `json:"origin"`
	ReferralName      string    `json:"referral_name"`
	ExecutorName      string    `json:"executor_name"`
	UserID            *int      `json:"user_id"`
	TeamID            *int      `json:"team_id"`
	Notes             string    `json:"notes"`
	BatchID           string    `json:"batch_id"`
	RegisteredByAdmin bool      `json:"registered_by_admin"`
	CreatedAt         time.Time `json:"created_at"`
}

// CompositeKey monta a chave de deduplicação de um registro:
// data|nome do cliente|procedimento|valor, com nome e procedimento em
// minúsculas. É única dentro de um lote e contra tudo já persistido.
func CompositeKey(date time.Time, clientName, procedureName string, amount float64) string {
	return fmt.Sprintf(
		"%s|%s|%s|%.2f",
		date.Format(time.DateOnly),
		strings.ToLower(strings.TrimSpace(clientName)),
		strings.ToLower(strings.TrimSpace(procedureName)),
		amount,
	)
}
