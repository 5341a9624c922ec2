package service

import "github.com/pkg/errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrItemNotFound  = errors.New("item not found in basket")
	ErrOrderNotFound = errors.New("order not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoEmailClaim       = errors.New("identity claim has no usable email")
	ErrInvalidStatus      = errors.New("invalid order status")

	ErrCPUNotFound         = errors.New("cpu not found")
	ErrGPUNotFound         = errors.New("gpu not found")
	ErrRAMNotFound         = errors.New("ram not found")
	ErrSSDNotFound         = errors.New("ssd not found")
	ErrHDDNotFound         = errors.New("hdd not found")
	ErrMotherboardNotFound = errors.New("motherboard not found")
	ErrPowerSupplyNotFound = errors.New("power supply not found")
	ErrPcCaseNotFound      = errors.New("pc case not found")
	ErrPCNotFound          = errors.New("pc not found")
	ErrWorkstationNotFound = errors.New("workstation not found")

	ErrBadCompletion = errors.New("unexpected completion response")
)

var notFoundErrs = []error{
	ErrUserNotFound, ErrItemNotFound, ErrOrderNotFound,
	ErrCPUNotFound, ErrGPUNotFound, ErrRAMNotFound, ErrSSDNotFound, ErrHDDNotFound,
	ErrMotherboardNotFound, ErrPowerSupplyNotFound, ErrPcCaseNotFound,
	ErrPCNotFound, ErrWorkstationNotFound,
}

// IsNotFound reports whether err is one of the typed not-found errors.
func IsNotFound(err error) bool {
	for _, nf := range notFoundErrs {
		if errors.Is(err, nf) {
			return true
		}
	}
	return false
}
