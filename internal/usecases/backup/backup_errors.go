package backup

import (
	"errors"
	"fmt"
)

// Erros específicos do gerenciador de backup
var (
	ErrSnapshotRead      = errors.New("error reading records for backup")
	ErrSnapshotSerialize = errors.New("error serializing backup snapshot")
	ErrSnapshotWrite     = errors.New("error persisting backup")
	ErrGenerateID        = errors.New("error generating backup ID")
)

// BackupError distingue a falha de backup das falhas de validação e de
// importação: quando ocorre, nada foi modificado ainda.
type BackupError struct {
	Err     error
	Details string
}

func (e *BackupError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BackupError) Unwrap() error {
	return e.Err
}

func NewBackupError(err error, details string, cause error) *BackupError {
	if cause != nil {
		details = fmt.Sprintf("%s: %v", details, cause)
	}
	return &BackupError{
		Err:     err,
		Details: details,
	}
}
