package errs

import "errors"

// Error kinds surfaced by the booking engine. Usecases attach them with Mark,
// handlers translate them with Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrPersistence     = errors.New("persistence error")
	ErrVersionConflict = errors.New("version conflict")
)

// Kind returns the first engine error kind found in err, or nil.
func Kind(err error) error {
	for _, k := range []error{ErrInvalidArgument, ErrNotFound, ErrValidation, ErrVersionConflict, ErrPersistence} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}
