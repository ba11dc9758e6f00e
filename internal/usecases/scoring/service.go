package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/infrastructure/repository"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/vfg2006/clinic-crm-api/pkg/utils"
)

// Scorer recalcula do zero o perfil RFV (recência/frequência/valor) de todos
// os clientes a partir do histórico completo de procedimentos executados.
// O recálculo total é intencional: linhas novas alteram agregados de
// clientes já existentes.
type Scorer interface {
	RecalculateAll() (*domain.RFVResult, error)
	ListCustomers(segment string, limit uint64) ([]*domain.RFVCustomer, error)
}

type Service struct {
	executedRepo repository.ExecutedRecordRepository
	rfvRepo      repository.RFVRepository
	now          func() time.Time
}

func NewService(
	executedRepo repository.ExecutedRecordRepository,
	rfvRepo repository.RFVRepository,
) Scorer {
	return &Service{
		executedRepo: executedRepo,
		rfvRepo:      rfvRepo,
		now:          time.Now,
	}
}

func (s *Service) RecalculateAll() (*domain.RFVResult, error) {
	startTime := time.Now()

	records, err := s.executedRepo.ListAll()
	if err != nil {
		return &domain.RFVResult{Success: false, Error: err.Error()}, err
	}

	customers := AggregateCustomers(records, s.now())

	result := &domain.RFVResult{
		Success: true,
		Total:   len(customers),
	}

	for _, customer := range customers {
		if err := s.rfvRepo.Upsert(customer); err != nil {
			logrus.WithFields(logrus.Fields{
				"customer": customer.CustomerName,
				"error":    err.Error(),
			}).Error("Erro ao gravar perfil RFV do cliente")
			continue
		}
		result.Updated++
	}

	logrus.WithFields(logrus.Fields{
		"total":    result.Total,
		"updated":  result.Updated,
		"duration": time.Since(startTime).String(),
	}).Info("Recálculo de RFV concluído")

	return result, nil
}

func (s *Service) ListCustomers(segment string, limit uint64) ([]*domain.RFVCustomer, error) {
	return s.rfvRepo.List(segment, limit)
}

// AggregateCustomers agrupa os procedimentos executados por nome de cliente
// normalizado e deriva um perfil RFV por cliente. E-mail e telefone vêm do
// registro mais recente que os possuía.
func AggregateCustomers(records []*domain.ExecutedRecord, now time.Time) []*domain.RFVCustomer {
	grouped := make(map[string][]*domain.ExecutedRecord)
	for _, record := range records {
		name := strings.ToLower(strings.TrimSpace(record.PatientName))
		if name == "" {
			continue
		}
		grouped[name] = append(grouped[name], record)
	}

	customers := make([]*domain.RFVCustomer, 0, len(grouped))
	for name, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		var (
			monetary float64
			email    string
			phone    string
		)
		for _, record := range group {
			monetary += record.Amount
			if record.PatientEmail != "" {
				email = record.PatientEmail
			}
			if record.PatientPhone != "" {
				phone = record.PatientPhone
			}
		}

		lastPurchase := group[len(group)-1].Date
		recencyDays := int(now.Sub(lastPurchase).Hours() / 24)
		if recencyDays < 0 {
			recencyDays = 0
		}

		frequency := len(group)

		customers = append(customers, &domain.RFVCustomer{
			CustomerName:     name,
			Email:            email,
			Phone:            phone,
			RecencyDays:      recencyDays,
			Frequency:        frequency,
			Monetary:         utils.RoundWithTwoDecimalPlace(monetary),
			Score:            ComputeScore(recencyDays, frequency, monetary),
			Segment:          Classify(recencyDays, frequency, monetary),
			LastPurchaseDate: lastPurchase,
		})
	}

	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CustomerName < customers[j].CustomerName
	})

	return customers
}

// ComputeScore calcula a pontuação composta (0-100): média das notas de
// recência, frequência e valor. A nota de recência zera após cerca de um
// ano de inatividade.
func ComputeScore(recencyDays, frequency int, monetary float64) float64 {
	recencyScore := 100 - float64(recencyDays)/3.65
	if recencyScore < 0 {
		recencyScore = 0
	}

	frequencyScore := float64(frequency) * 10
	if frequencyScore > 100 {
		frequencyScore = 100
	}

	monetaryScore := monetary / 100
	if monetaryScore > 100 {
		monetaryScore = 100
	}

	return utils.RoundWithTwoDecimalPlace((recencyScore + frequencyScore + monetaryScore) / 3)
}

// Classify atribui o segmento do cliente, nesta ordem de precedência:
// VIP, Frequente, Recente e Ocasional.
func Classify(recencyDays, frequency int, monetary float64) string {
	switch {
	case monetary > 10000 && frequency > 5:
		return domain.SegmentVIP
	case frequency > 3:
		return domain.SegmentFrequente
	case recencyDays < 30:
		return domain.SegmentRecente
	default:
		return domain.SegmentOcasional
	}
}
