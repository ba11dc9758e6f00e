package domain

// ImportRequest é o corpo aceito pelo endpoint único de importação.
// PeriodStart e PeriodEnd são datas ISO (YYYY-MM-DD), obrigatórias quando
// ClearOldData é verdadeiro.
type ImportRequest struct {
	Action        string      `json:"action"`
	FileType      string      `json:"fileType"`
	Data          []ImportRow `json:"data"`
	ExecutadoData []ImportRow `json:"executadoData"`
	ClearOldData  bool        `json:"clearOldData"`
	PeriodStart   string      `json:"periodStart"`
	PeriodEnd     string      `json:"periodEnd"`
}

// BackupResponse é a resposta da ação "backup".
type BackupResponse struct {
	Success       bool   `json:"success"`
	BackupID      string `json:"backupId,omitempty"`
	RevenueCount  int    `json:"revenueCount"`
	ExecutedCount int    `json:"executedCount"`
	Error         string `json:"error,omitempty"`
}

// ValidateResponse é a resposta da ação "validate". Para fileType="both",
// Vendas e Executado são preenchidos; caso contrário apenas Result.
type ValidateResponse struct {
	Result    *ValidationResult `json:"result,omitempty"`
	Vendas    *ValidationResult `json:"vendas,omitempty"`
	Executado *ValidationResult `json:"executado,omitempty"`
}

// ImportResponse é a resposta da ação "import".
type ImportResponse struct {
	Success         bool              `json:"success"`
	BackupID        string            `json:"backupId,omitempty"`
	Vendas          *ImporterResult   `json:"vendas"`
	Executado       *ImporterResult   `json:"executado"`
	RFV             *RFVResult        `json:"rfv,omitempty"`
	DurationSeconds float64           `json:"duration_seconds"`
	Error           string            `json:"error,omitempty"`
	Validation      *ValidateResponse `json:"validation,omitempty"`
}
