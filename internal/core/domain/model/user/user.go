// Package user provides the User aggregate for bakery staff accounts:
// email identity, display name, password hash, a closed Role enumeration,
// and a locked flag for accounts that must not be deleted.
package user

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a staff account. The email is the unique business identifier; the
// password hash is opaque to the domain and produced by the hashing port.
// Locked users cannot be deleted through administrative screens.
type User struct {
	id           kernel.UUID
	email        string
	firstName    string
	lastName     string
	passwordHash string
	role         Role
	locked       bool

	guard guard.ConstructorGuard
}

// NewUser creates a staff account. Email, names, and password hash are
// required; the role must be a defined staff role.
func NewUser(
	id kernel.UUID,
	email string,
	firstName string,
	lastName string,
	passwordHash string,
	role Role,
	locked bool,
) (*User, error) {
	u := &User{
		locked: locked,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFirstName(firstName),
		u.setLastName(lastName),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rehydrates a user from persistence.
func RestoreUser(
	id kernel.UUID,
	email string,
	firstName string,
	lastName string,
	passwordHash string,
	role Role,
	locked bool,
) (*User, error) {
	return NewUser(id, email, firstName, lastName, passwordHash, role, locked)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// PasswordHash returns the opaque credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's staff role.
func (u *User) Role() Role {
	return u.role
}

// Locked reports whether the account is protected from deletion.
func (u *User) Locked() bool {
	return u.locked
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	u.firstName = firstName
	return nil
}

func (u *User) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	u.lastName = lastName
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
