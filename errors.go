package govkit

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// AlreadyDeployerError is returned when an addDeployer action is requested for
// an account that is already registered as a deployer.
type AlreadyDeployerError struct {
	Account common.Address
}

// NewAlreadyDeployerError creates a new AlreadyDeployerError.
func NewAlreadyDeployerError(account common.Address) *AlreadyDeployerError {
	return &AlreadyDeployerError{Account: account}
}

func (e *AlreadyDeployerError) Error() string {
	return fmt.Sprintf("account %s is already a deployer", e.Account)
}

// NotDeployerError is returned when a removeDeployer action is requested for
// an account that is not registered as a deployer.
type NotDeployerError struct {
	Account common.Address
}

// NewNotDeployerError creates a new NotDeployerError.
func NewNotDeployerError(account common.Address) *NotDeployerError {
	return &NotDeployerError{Account: account}
}

func (e *NotDeployerError) Error() string {
	return fmt.Sprintf("account %s is not a deployer", e.Account)
}

// AlreadyValidatorError is returned when an addValidator action is requested
// for an account that is already registered as a validator.
type AlreadyValidatorError struct {
	Account common.Address
}

// NewAlreadyValidatorError creates a new AlreadyValidatorError.
func NewAlreadyValidatorError(account common.Address) *AlreadyValidatorError {
	return &AlreadyValidatorError{Account: account}
}

func (e *AlreadyValidatorError) Error() string {
	return fmt.Sprintf("account %s is already a validator", e.Account)
}

// NotValidatorError is returned when a validator action (remove, activate,
// disable) is requested for an account that is not registered as a validator.
type NotValidatorError struct {
	Account common.Address
}

// NewNotValidatorError creates a new NotValidatorError.
func NewNotValidatorError(account common.Address) *NotValidatorError {
	return &NotValidatorError{Account: account}
}

func (e *NotValidatorError) Error() string {
	return fmt.Sprintf("account %s is not a validator", e.Account)
}
