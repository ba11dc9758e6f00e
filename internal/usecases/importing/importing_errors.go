package importing

import "github.com/pkg/errors"

var (
	ErrInvalidAction    = errors.New("ação de importação desconhecida")
	ErrInvalidFileType  = errors.New("tipo de arquivo desconhecido")
	ErrEmptyBatch       = errors.New("lote de importação vazio")
	ErrMissingPeriod    = errors.New("período obrigatório quando clearOldData está ativo")
	ErrInvalidPeriod    = errors.New("período em formato inválido, use YYYY-MM-DD")
	ErrBackupFailed     = errors.New("falha ao criar o backup pré-importação")
	ErrTooManyErrors    = errors.New("lote com taxa de erros acima do limite")
	ErrClearDataFailed  = errors.New("falha ao limpar registros do período")
	ErrKeyLookupFailed  = errors.New("falha ao carregar chaves de deduplicação")
	ErrSellerDirFailed  = errors.New("falha ao carregar diretório de vendedores")
	ErrSpreadsheetParse = errors.New("falha ao interpretar a planilha enviada")
)

// ImportError agrega o erro sentinela com detalhes legíveis para a resposta
// HTTP e a causa original para o log.
type ImportError struct {
	Err     error
	Details string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, details string, cause error) *ImportError {
	if cause != nil {
		err = errors.Wrap(err, cause.Error())
	}
	return &ImportError{Err: err, Details: details}
}
