/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrMissingIdentityField is returned when a loaded record lacks the
	// configured identity field
	ErrMissingIdentityField = errors.New("identity field missing from record")

	// ErrUnknownIdentity is returned when a batch lookup names an
	// identity value that was never loaded
	ErrUnknownIdentity = errors.New("identity value not loaded")

	// ErrDuplicateRelation is returned when a relation name is
	// registered twice
	ErrDuplicateRelation = errors.New("relation already registered")

	// ErrUnknownRelation is returned when resolving a relation name that
	// was never registered
	ErrUnknownRelation = errors.New("relation not registered")

	// ErrDuplicateType is returned when a type name is registered twice
	// with a manager
	ErrDuplicateType = errors.New("type already registered")

	// ErrUnknownType is returned when a manager lookup names an
	// unregistered type
	ErrUnknownType = errors.New("type not registered")
)

// MissingIdentityFieldError reports a record that lacks the identity field
type MissingIdentityFieldError struct {
	Field string
}

func (e *MissingIdentityFieldError) Error() string {
	return fmt.Sprintf("record has no identity field %q", e.Field)
}

func (e *MissingIdentityFieldError) Is(target error) bool {
	return target == ErrMissingIdentityField
}

// UnknownIdentityError reports a lookup for an identity value that was never loaded
type UnknownIdentityError struct {
	IdentityValue string
}

func (e *UnknownIdentityError) Error() string {
	return fmt.Sprintf("identity value %q not loaded", e.IdentityValue)
}

func (e *UnknownIdentityError) Is(target error) bool {
	return target == ErrUnknownIdentity
}

// DuplicateRelationError reports a relation name registered twice
type DuplicateRelationError struct {
	Name string
}

func (e *DuplicateRelationError) Error() string {
	return fmt.Sprintf("relation %q already registered", e.Name)
}

func (e *DuplicateRelationError) Is(target error) bool {
	return target == ErrDuplicateRelation
}

// UnknownRelationError reports a relation name that was never registered
type UnknownRelationError struct {
	Name string
}

func (e *UnknownRelationError) Error() string {
	return fmt.Sprintf("relation %q not registered", e.Name)
}

func (e *UnknownRelationError) Is(target error) bool {
	return target == ErrUnknownRelation
}

// DuplicateTypeError reports a type name registered twice with a manager
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("type %q already registered", e.Name)
}

func (e *DuplicateTypeError) Is(target error) bool {
	return target == ErrDuplicateType
}

// UnknownTypeError reports a manager lookup for an unregistered type
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("type %q not registered", e.Name)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// Helper functions for creating errors

// NewMissingIdentityFieldError creates a new MissingIdentityFieldError
func NewMissingIdentityFieldError(field string) error {
	return &MissingIdentityFieldError{Field: field}
}

// NewUnknownIdentityError creates a new UnknownIdentityError
func NewUnknownIdentityError(identityValue string) error {
	return &UnknownIdentityError{IdentityValue: identityValue}
}

// NewDuplicateRelationError creates a new DuplicateRelationError
func NewDuplicateRelationError(name string) error {
	return &DuplicateRelationError{Name: name}
}

// NewUnknownRelationError creates a new UnknownRelationError
func NewUnknownRelationError(name string) error {
	return &UnknownRelationError{Name: name}
}

// NewDuplicateTypeError creates a new DuplicateTypeError
func NewDuplicateTypeError(name string) error {
	return &DuplicateTypeError{Name: name}
}

// NewUnknownTypeError creates a new UnknownTypeError
func NewUnknownTypeError(name string) error {
	return &UnknownTypeError{Name: name}
}

// IsMissingIdentityField checks if an error is a missing identity field error
func IsMissingIdentityField(err error) bool {
	return errors.Is(err, ErrMissingIdentityField)
}

// IsUnknownIdentity checks if an error is an unknown identity error
func IsUnknownIdentity(err error) bool {
	return errors.Is(err, ErrUnknownIdentity)
}

// IsDuplicateRelation checks if an error is a duplicate relation error
func IsDuplicateRelation(err error) bool {
	return errors.Is(err, ErrDuplicateRelation)
}

// IsUnknownRelation checks if an error is an unknown relation error
func IsUnknownRelation(err error) bool {
	return errors.Is(err, ErrUnknownRelation)
}

// IsDuplicateType checks if an error is a duplicate type error
func IsDuplicateType(err error) bool {
	return errors.Is(err, ErrDuplicateType)
}

// IsUnknownType checks if an error is an unknown type error
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}
