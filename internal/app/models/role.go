package models

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleDonor   Role = "donor"
	RolePatient Role = "patient"
	RolePledge  Role = "pledge"
)

func ParseRole(value string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleDonor:
		return RoleDonor, nil
	case RolePatient:
		return RolePatient, nil
	case RolePledge:
		return RolePledge, nil
	}
	return "", fmt.Errorf("unknown role %q", value)
}

// Label is the capitalised name used in user-facing messages.
func (r Role) Label() string {
	switch r {
	case RoleDonor:
		return "Donor"
	case RolePatient:
		return "Patient"
	case RolePledge:
		return "Pledge"
	}
	return string(r)
}

// RecordRole is the role whose contract methods store this role's records.
// Pledges are donor records with a distinct id prefix.
func (r Role) RecordRole() Role {
	if r == RolePledge {
		return RoleDonor
	}
	return r
}

func (r Role) IsValid() bool {
	return r == RoleDonor || r == RolePatient || r == RolePledge
}
