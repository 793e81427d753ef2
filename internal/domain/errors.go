package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Taxonomía: no-encontrado, validación, regla de negocio e integridad de datos.
// Todos son recuperables en el call site; ninguno debe tumbar el proceso.
var (
	// No encontrado
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")

	// Validación (se rechaza antes de tocar los stores)
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicateBarcode = errors.New("código de barras duplicado")
	ErrUsernameTaken    = errors.New("el nombre de usuario ya está registrado")

	// Regla de negocio (se rechaza después de calcular el resultado, antes de escribir)
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrNegativeStock        = errors.New("el stock no puede quedar negativo")
	ErrExpiredMedicine      = errors.New("medicamento vencido")
	ErrPrescriptionRequired = errors.New("se requiere receta médica")

	// Integridad: existe el medicamento pero falta su registro de inventario.
	// Indica corrupción del store, no entrada inválida del usuario.
	ErrDataIntegrity = errors.New("registro de inventario faltante para el medicamento")

	// Auth
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
