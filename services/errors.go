package services

import "fmt"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// AppError is a failure the client caused. Its Message is safe to return
// in the response body.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches any AppError of the same kind, so callers can write
// errors.Is(err, services.ErrNotFound).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}

var (
	ErrValidation = &AppError{Kind: KindValidation}
	ErrNotFound   = &AppError{Kind: KindNotFound}
	ErrConflict   = &AppError{Kind: KindConflict}
)

func validationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

func notFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func conflictError(msg string) error {
	return &AppError{Kind: KindConflict, Message: msg}
}

const (
	msgUserIDRequired   = "User ID is required."
	msgUserNotFound     = "User not found."
	msgPersonNotFound   = "Person not found."
	msgPlanetNotFound   = "Planet not found."
	msgFavoriteNotFound = "Favorite not found."
	msgPersonDuplicate  = "This person is already in favorites."
	msgPlanetDuplicate  = "This planet is already in favorites."

	// Shown when a favorite outlived its target.
	unknownName = "Unknown"
)
