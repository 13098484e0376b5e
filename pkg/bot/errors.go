package bot

import "fmt"

// ExternalServiceError indica falha de transporte ou de formato na
// comunicação com o backend conversacional externo
type ExternalServiceError struct {
	Op  string
	Err error
}

// Error implementa a interface error
func (e *ExternalServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("falha no serviço externo durante %s", e.Op)
	}
	return fmt.Sprintf("falha no serviço externo durante %s: %v", e.Op, e.Err)
}

// Unwrap retorna o erro original
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// newExternalServiceError cria um ExternalServiceError para a operação
func newExternalServiceError(op string, err error) *ExternalServiceError {
	return &ExternalServiceError{Op: op, Err: err}
}
