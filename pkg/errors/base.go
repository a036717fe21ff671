package errors

var newCoreCode = WithPrefix("CORE")

var (
	ErrValidation = newCoreCode().New("validation failed")
	ErrNotFound   = newCoreCode().New("resource not found")
	ErrConflict   = newCoreCode().New("resource conflict")
	ErrInternal   = newCoreCode().New("internal error")
)
