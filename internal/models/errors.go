package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrValidation is wrapped by all errors caused by invalid input.
	// Operations failing with it have not changed any data.
	ErrValidation = errors.New("invalid data")
)

var (
	ErrAmountNotPositive      = fmt.Errorf("%w: the amount must be larger than zero", ErrValidation)
	ErrLabelEmpty             = fmt.Errorf("%w: the label must not be empty", ErrValidation)
	ErrNameEmpty              = fmt.Errorf("%w: the name must not be empty", ErrValidation)
	ErrTransactionTypeInvalid = fmt.Errorf("%w: the type must be either 'in' or 'out'", ErrValidation)
	ErrValueNegative          = fmt.Errorf("%w: the value must not be negative", ErrValidation)
	ErrMonthlyAmountNegative  = fmt.Errorf("%w: monthly income and expenses must not be negative", ErrValidation)
	ErrDateMissing            = fmt.Errorf("%w: the date must be set", ErrValidation)
)
