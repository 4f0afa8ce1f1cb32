package bike

import "errors"

var (
	ErrInvalidType   = errors.New("invalid bike type")
	ErrNegativeRate  = errors.New("hourly rate cannot be negative")
	ErrMissingBikeID = errors.New("bike id is required")
)

type Type string

const (
	TypeScooter Type = "scooter"
	TypeEBike   Type = "ebike"
	TypeSegway  Type = "segway"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeScooter, TypeEBike, TypeSegway:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
