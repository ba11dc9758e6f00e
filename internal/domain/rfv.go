package domain

import "time"

// Segmentos RFV, em ordem de precedência de classificação
const (
	SegmentVIP       = "VIP"
	SegmentFrequente = "Frequente"
	SegmentRecente   = "Recente"
	SegmentOcasional = "Ocasional"
)

// RFVCustomer é a visão materializada de recência/frequência/valor de um
// cliente, chaveada pelo nome normalizado (minúsculas). Recalculada por
// completo e reinserida a cada importação; nunca removida.
type RFVCustomer struct {
	CustomerName     string    `json:"customer_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	RecencyDays      int       `json:"recency_days"`
	Frequency        int       `json:"frequency"`
	Monetary         float64   `json:"monetary"`
	Score            float64   `json:"score"`
	Segment          string    `json:"segment"`
	LastPurchaseDate time.Time `json:"last_purchase_date"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RFVResult resume uma execução do recálculo de RFV. A falha do recálculo
// não desfaz a importação: o resultado é reportado como flag independente.
type RFVResult struct {
	Success bool   `json:"success"`
	Updated int    `json:"updated"`
	Total   int    `json:"total"`
	Error   string `json:"error,omitempty"`
}
