package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Tipos de arquivo aceitos pelo pipeline de importação
const (
	FileTypeVendas    = "vendas"
	FileTypeExecutado = "executado"
	FileTypeBoth      = "both"
)

// Ações aceitas pelo endpoint de importação
const (
	ActionBackup   = "backup"
	ActionValidate = "validate"
	ActionImport   = "import"
)

// FlexString aceita string, número ou null no JSON de entrada. As planilhas
// exportadas pelo frontend misturam células numéricas e textuais nas colunas
// de data e valor.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}

func (f FlexString) IsEmpty() bool {
	return f.String() == ""
}

// ImportRow é uma linha bruta enviada pelo chamador. Não possui identidade
// própria além da posição dentro do lote submetido.
type ImportRow struct {
	Date             FlexString `json:"date"`
	ClientName       string     `json:"client_name"`
	ProcedureName    string     `json:"procedure_name"`
	Department       string     `json:"department"`
	ValueSold        FlexString `json:"value_sold"`
	ValueReceived    FlexString `json:"value_received"`
	SellerName       string     `json:"seller_name"`
	ProfessionalName string     `json:"professional_name"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Origin           string     `json:"origin"`
	ReferredBy       string     `json:"referred_by"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes"`
}
