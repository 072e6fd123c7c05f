package errors

import "errors"

var (
	ErrContractNotDeployed = errors.New("contract is not deployed on this network")

	ErrUnknownNetwork = errors.New("unknown network")
)
