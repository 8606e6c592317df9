// Package usecase implements the company comparison logic: the bounded
// selection set and the derived per-company and cross-set metrics.
package usecase

import "errors"

var (
	// ErrSetFull is returned when adding a company to a full comparison set.
	ErrSetFull = errors.New("maximum 4 companies can be compared")

	// ErrDuplicateCompany is returned when adding a company already in the set.
	ErrDuplicateCompany = errors.New("company is already selected")

	// ErrTooFewCompanies is returned when comparing fewer than two companies.
	ErrTooFewCompanies = errors.New("select at least 2 companies to compare")

	// ErrCompanyNotFound is returned when a selected company id has no
	// active row.
	ErrCompanyNotFound = errors.New("company not found")
)
