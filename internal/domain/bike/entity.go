package bike

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bike is read-only from the booking engine's point of view; inventory
// management is the only writer.
type Bike struct {
	id          uuid.UUID
	bikeType    Type
	hourlyRate  decimal.Decimal
	accessCode  string
	available   bool
	location    string
	features    []string
	franchiseID uuid.UUID
}

func NewBike(
	bikeType Type,
	hourlyRate decimal.Decimal,
	available bool,
	location string,
	features []string,
	franchiseID uuid.UUID,
) (*Bike, error) {
	if !bikeType.IsValid() {
		return nil, ErrInvalidType
	}
	if hourlyRate.IsNegative() {
		return nil, ErrNegativeRate
	}

	return &Bike{
		id:          uuid.New(),
		bikeType:    bikeType,
		hourlyRate:  hourlyRate,
		accessCode:  MintAccessCode(),
		available:   available,
		location:    location,
		features:    features,
		franchiseID: franchiseID,
	}, nil
}

func ReconstructBike(
	id uuid.UUID,
	bikeType Type,
	hourlyRate decimal.Decimal,
	accessCode string,
	available bool,
	location string,
	features []string,
	franchiseID uuid.UUID,
) *Bike {
	return &Bike{
		id:          id,
		bikeType:    bikeType,
		hourlyRate:  hourlyRate,
		accessCode:  accessCode,
		available:   available,
		location:    location,
		features:    features,
		franchiseID: franchiseID,
	}
}

// MintAccessCode produces the opaque unlock code handed out on successful
// bookings: "AC" plus the first 6 hex chars of a fresh uuid, uppercased.
func MintAccessCode() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("AC%s", strings.ToUpper(hex[:6]))
}

func (b *Bike) ID() uuid.UUID               { return b.id }
func (b *Bike) Type() Type                  { return b.bikeType }
func (b *Bike) HourlyRate() decimal.Decimal { return b.hourlyRate }
func (b *Bike) AccessCode() string          { return b.accessCode }
func (b *Bike) Available() bool             { return b.available }
func (b *Bike) Location() string            { return b.location }
func (b *Bike) Features() []string          { return b.features }
func (b *Bike) FranchiseID() uuid.UUID      { return b.franchiseID }
