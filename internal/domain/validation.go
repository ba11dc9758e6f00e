package domain

// RowError é um erro estrutural de uma linha (data inválida, nome em branco,
// valor não numérico). Nunca interrompe o processamento do lote.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// RowWarning é um aviso informativo, como data fora do período declarado.
// Nunca bloqueia a importação.
type RowWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// RowDuplicate marca a segunda ocorrência (ou posterior) de uma chave
// composta dentro do mesmo lote.
type RowDuplicate struct {
	Row int    `json:"row"`
	Key string `json:"key"`
}

type ValidationSummary struct {
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	Duplicate int `json:"duplicate"`
}

// ValidationResult é o resultado da validação de um lote. Os índices de
// ValidRows são baseados em zero; os campos Row de erros, avisos e
// duplicados referem-se à linha da planilha (baseados em um).
type ValidationResult struct {
	TotalRows  int               `json:"totalRows"`
	ValidRows  []int             `json:"validRows"`
	Errors     []RowError        `json:"errors"`
	Warnings   []RowWarning      `json:"warnings"`
	Duplicates []RowDuplicate    `json:"duplicates"`
	Summary    ValidationSummary `json:"summary"`
}

// ImporterResult é o resultado da fase de inserção de um dos conjuntos.
type ImporterResult struct {
	Imported         int        `json:"imported"`
	Duplicates       int        `json:"duplicates"`
	DuplicateDetails []string   `json:"duplicateDetails"`
	Errors           []RowError `json:"errors"`
	UnmatchedSellers []string   `json:"unmatchedSellers"`
}
