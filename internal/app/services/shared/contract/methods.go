package contract

import (
	"fmt"
	"lifeledger-service/internal/pkg/constvars"
	"math/big"
)

const (
	MethodSetDonors          = "setDonors"
	MethodSetPatients        = "setPatients"
	MethodGetDonor           = "getDonor"
	MethodGetPatient         = "getPatient"
	MethodValidateDonor      = "validateDonor"
	MethodValidatePatient    = "validatePatient"
	MethodGetCountOfDonors   = "getCountOfDonors"
	MethodGetCountOfPatients = "getCountOfPatients"
	MethodGetAllDonorIDs     = "getAllDonorIDs"
	MethodGetAllPatientIDs   = "getAllPatientIDs"
)

// Positions of the registrant tuple returned by getDonor and getPatient.
const (
	TupleFullName = iota
	TupleAge
	TupleGender
	TupleBloodType
	TupleOrgans
	TupleWeight
	TupleHeight
	TupleLen
)

func TupleString(tuple []interface{}, index int) (string, error) {
	if index >= len(tuple) {
		return "", fmt.Errorf("tuple has %d values, want index %d", len(tuple), index)
	}
	value, ok := tuple[index].(string)
	if !ok {
		return "", fmt.Errorf(constvars.ErrDevCannotDecodeContractValue, tuple[index], index)
	}
	return value, nil
}

func TupleUint64(tuple []interface{}, index int) (uint64, error) {
	if index >= len(tuple) {
		return 0, fmt.Errorf("tuple has %d values, want index %d", len(tuple), index)
	}
	switch value := tuple[index].(type) {
	case *big.Int:
		if value == nil || !value.IsUint64() {
			return 0, fmt.Errorf("value at tuple index %d does not fit uint64", index)
		}
		return value.Uint64(), nil
	case uint64:
		return value, nil
	case int:
		return uint64(value), nil
	}
	return 0, fmt.Errorf(constvars.ErrDevCannotDecodeContractValue, tuple[index], index)
}

func TupleStrings(tuple []interface{}, index int) ([]string, error) {
	if index >= len(tuple) {
		return nil, fmt.Errorf("tuple has %d values, want index %d", len(tuple), index)
	}
	value, ok := tuple[index].([]string)
	if !ok {
		return nil, fmt.Errorf(constvars.ErrDevCannotDecodeContractValue, tuple[index], index)
	}
	return value, nil
}

func TupleBool(tuple []interface{}, index int) (bool, error) {
	if index >= len(tuple) {
		return false, fmt.Errorf("tuple has %d values, want index %d", len(tuple), index)
	}
	value, ok := tuple[index].(bool)
	if !ok {
		return false, fmt.Errorf(constvars.ErrDevCannotDecodeContractValue, tuple[index], index)
	}
	return value, nil
}
