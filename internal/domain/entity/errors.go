package entity

import "errors"

// ErrorKind classifies domain failures. Each kind maps to one HTTP status
// and is returned to clients as a machine-readable code.
type ErrorKind string

const (
	KindValidation            ErrorKind = "validation_error"
	KindNotFound              ErrorKind = "not_found"
	KindDuplicateRequest      ErrorKind = "duplicate_request"
	KindInvalidTransition     ErrorKind = "invalid_transition"
	KindCoordinatorUnassigned ErrorKind = "coordinator_unassigned"
	KindNotAMember            ErrorKind = "not_a_member"
	KindUnauthorized          ErrorKind = "unauthorized"
	KindUnauthenticated       ErrorKind = "unauthenticated"
	KindConflict              ErrorKind = "conflict"
	KindStore                 ErrorKind = "store_error"
)

// DomainError is the error type returned by use-cases and repositories.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

// Is matches another DomainError with the same kind and message, so freshly
// built errors compare equal to the sentinels below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

func newError(kind ErrorKind, msg string) *DomainError {
	return &DomainError{Kind: kind, Message: msg}
}

func NewValidationError(msg string) error        { return newError(KindValidation, msg) }
func NewNotFoundError(msg string) error          { return newError(KindNotFound, msg) }
func NewInvalidTransitionError(msg string) error { return newError(KindInvalidTransition, msg) }
func NewUnauthorizedError(msg string) error      { return newError(KindUnauthorized, msg) }
func NewConflictError(msg string) error          { return newError(KindConflict, msg) }

// NewStoreError wraps a persistence failure.
func NewStoreError(msg string, err error) error {
	return &DomainError{Kind: KindStore, Message: msg, Err: err}
}

// KindOf returns the kind of err, falling back to KindStore for errors that
// did not originate in the domain.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStore
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

var (
	ErrUserNotFound         = newError(KindNotFound, "user not found")
	ErrClubNotFound         = newError(KindNotFound, "club not found")
	ErrJoinRequestNotFound  = newError(KindNotFound, "join request not found")
	ErrEventNotFound        = newError(KindNotFound, "event not found")
	ErrPostNotFound         = newError(KindNotFound, "post not found")
	ErrCommentNotFound      = newError(KindNotFound, "comment not found")
	ErrNotificationNotFound = newError(KindNotFound, "notification not found")
	ErrAnnouncementNotFound = newError(KindNotFound, "announcement not found")
	ErrTokenNotFound        = newError(KindNotFound, "token not found")

	ErrDuplicateRequest      = newError(KindDuplicateRequest, "a pending join request already exists for this club")
	ErrCoordinatorUnassigned = newError(KindCoordinatorUnassigned, "no club is assigned to this coordinator")
	ErrNotAMember            = newError(KindNotAMember, "user is not a member of this club")
	ErrInvalidStatus         = newError(KindInvalidTransition, "status must be one of: approved, rejected")
	ErrInvalidDecision       = newError(KindInvalidTransition, "decision must be one of: accept, reject")
	ErrNotPending            = newError(KindInvalidTransition, "only pending items can be decided")
	ErrAffiliationChanged    = newError(KindInvalidTransition, "user affiliation changed concurrently")

	ErrAdminRequired = newError(KindUnauthorized, "admin role required")
	ErrForbidden     = newError(KindUnauthorized, "you are not allowed to perform this action")

	ErrInvalidCredentials = newError(KindUnauthenticated, "invalid credentials")
	ErrInvalidToken       = newError(KindUnauthenticated, "invalid or expired token")

	ErrClubNameTaken = newError(KindConflict, "club name already taken")
	ErrEmailTaken    = newError(KindConflict, "email already registered")
	ErrUsernameTaken = newError(KindConflict, "username already taken")
)
