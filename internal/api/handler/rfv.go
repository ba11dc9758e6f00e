package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/scoring"
	"github.com/vfg2006/clinic-crm-api/pkg/apiErrors"
)

// ListRFVCustomers retorna os perfis RFV ordenados por pontuação. O filtro
// opcional "segment" aceita os segmentos conhecidos.
func ListRFVCustomers(scorer scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segment := r.URL.Query().Get("segment")
		if segment != "" && !validSegment(segment) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Segmento inválido. Valores aceitos: VIP, Frequente, Recente, Ocasional", nil)
			return
		}

		customers, err := scorer.ListCustomers(segment, queryLimit(r, 100))
		if err != nil {
			logrus.Error("Erro ao listar perfis RFV:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar perfis RFV", nil)
			return
		}

		writeJSON(w, http.StatusOK, customers)
	}
}

func validSegment(segment string) bool {
	switch segment {
	case domain.SegmentVIP, domain.SegmentFrequente, domain.SegmentRecente, domain.SegmentOcasional:
		return true
	}
	return false
}
