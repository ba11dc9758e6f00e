package importing

import (
	"io"
	"strings"

	"github.com/vfg2006/clinic-crm-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Apelidos aceitos nos cabeçalhos das planilhas exportadas pela clínica.
// As colunas podem vir em qualquer ordem; colunas desconhecidas são
// ignoradas.
var headerAliases = map[string]string{
	"data":            "date",
	"data da venda":   "date",
	"data do atend.":  "date",
	"cliente":         "client_name",
	"nome":            "client_name",
	"nome do cliente": "client_name",
	"paciente":        "client_name",
	"procedimento":    "procedure_name",
	"servico":         "procedure_name",
	"departamento":    "department",
	"setor":           "department",
	"valor":           "value_sold",
	"valor vendido":   "value_sold",
	"valor da venda":  "value_sold",
	"valor recebido":  "value_received",
	"valor pago":      "value_received",
	"vendedor":        "seller_name",
	"vendedora":       "seller_name",
	"consultor":       "seller_name",
	"profissional":    "professional_name",
	"executor":        "professional_name",
	"telefone":        "phone",
	"celular":         "phone",
	"email":           "email",
	"e-mail":          "email",
	"origem":          "origin",
	"indicacao":       "referred_by",
	"indicado por":    "referred_by",
	"status":          "status",
	"situacao":        "status",
	"observacoes":     "notes",
	"obs":             "notes",
}

// ParseSpreadsheet lê a primeira aba de um arquivo xlsx e converte cada
// linha de dados em uma ImportRow, usando a primeira linha como cabeçalho.
// Nenhuma validação acontece aqui: linhas problemáticas seguem para o
// validador como qualquer outra.
func ParseSpreadsheet(reader io.Reader) ([]domain.ImportRow, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, NewImportError(ErrSpreadsheetParse, "", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewImportError(ErrSpreadsheetParse, "Planilha sem abas", nil)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, NewImportError(ErrSpreadsheetParse, "", err)
	}
	if len(rows) < 2 {
		return []domain.ImportRow{}, nil
	}

	columns := mapHeaders(rows[0])

	parsed := make([]domain.ImportRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}

		var row domain.ImportRow
		for i, cell := range cells {
			field, ok := columns[i]
			if !ok {
				continue
			}
			setRowField(&row, field, strings.TrimSpace(cell))
		}
		parsed = append(parsed, row)
	}

	return parsed, nil
}

func mapHeaders(header []string) map[int]string {
	columns := make(map[int]string, len(header))
	for i, cell := range header {
		name := normalizeName(cell)
		if field, ok := headerAliases[name]; ok {
			columns[i] = field
		}
	}
	return columns
}

func setRowField(row *domain.ImportRow, field, value string) {
	switch field {
	case "date":
		row.Date = domain.FlexString(value)
	case "client_name":
		row.ClientName = value
	case "procedure_name":
		row.ProcedureName = value
	case "department":
		row.Department = value
	case "value_sold":
		row.ValueSold = domain.FlexString(value)
	case "value_received":
		row.ValueReceived = domain.FlexString(value)
	case "seller_name":
		row.SellerName = value
	case "professional_name":
		row.ProfessionalName = value
	case "phone":
		row.Phone = value
	case "email":
		row.Email = value
	case "origin":
		row.Origin = value
	case "referred_by":
		row.ReferredBy = value
	case "status":
		row.Status = value
	case "notes":
		row.Notes = value
	}
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
