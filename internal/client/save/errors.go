package save

import "errors"

// Ошибки неверного использования планировщика.
var (
	// ErrNoConflict возвращается при попытке разрешить конфликт,
	// которого нет
	ErrNoConflict = errors.New("no unresolved conflict")

	// ErrNothingToSave возвращается, когда разрешение в пользу клиента
	// запрошено без несохраненной правки
	ErrNothingToSave = errors.New("no pending edit to save")
)
