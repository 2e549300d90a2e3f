package business

import "github.com/jhoicas/BarApp-api/internal/domain"

// ValidationError rechazo de un registro o de una consulta.
// Fields enumera todos los campos faltantes o inválidos de la categoría que falló.
type ValidationError struct {
	Message string
	Fields  []string
	Allowed []string // solo para campos enumerados
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }
