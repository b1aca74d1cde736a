package entity

import "fmt"

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleVisitor     UserRole = "visitor"
	RoleMember      UserRole = "member"
	RoleLeader      UserRole = "leader"
	RoleCoordinator UserRole = "coordinator"
	RoleAdmin       UserRole = "admin"
)

func DefaultRole() UserRole {
	return RoleVisitor
}

// ParseRole converts a raw string into a known role.
func ParseRole(s string) (UserRole, error) {
	switch r := UserRole(s); r {
	case RoleVisitor, RoleMember, RoleLeader, RoleCoordinator, RoleAdmin:
		return r, nil
	}
	return "", NewValidationError(fmt.Sprintf("unknown role %q", s))
}

// RequiresClub reports whether a user holding this role must be tied to a club.
func (r UserRole) RequiresClub() bool {
	return r == RoleMember || r == RoleCoordinator
}

// Affiliation is the {role, club} pair of a user. It is always read and
// written as one value so the two halves can never disagree. Build it with
// the constructors below rather than a literal.
type Affiliation struct {
	Role   UserRole `bson:"role" json:"role"`
	ClubID string   `bson:"club_id,omitempty" json:"club_id,omitempty"`
}

func Visitor() Affiliation { return Affiliation{Role: RoleVisitor} }

func Leader() Affiliation { return Affiliation{Role: RoleLeader} }

func Admin() Affiliation { return Affiliation{Role: RoleAdmin} }

func MemberOf(clubID string) Affiliation {
	return Affiliation{Role: RoleMember, ClubID: clubID}
}

func CoordinatorOf(clubID string) Affiliation {
	return Affiliation{Role: RoleCoordinator, ClubID: clubID}
}

// NewAffiliation builds an affiliation from a role and an optional club id,
// rejecting combinations that break the role/club invariant.
func NewAffiliation(role UserRole, clubID string) (Affiliation, error) {
	a := Affiliation{Role: role}
	if role.RequiresClub() {
		a.ClubID = clubID
	} else if clubID != "" {
		return Affiliation{}, NewValidationError(fmt.Sprintf("role %s cannot be attached to a club", role))
	}
	return a, a.Validate()
}

// Validate enforces: member/coordinator carry a club, everyone else carries none.
func (a Affiliation) Validate() error {
	if _, err := ParseRole(string(a.Role)); err != nil {
		return err
	}
	if a.Role.RequiresClub() && a.ClubID == "" {
		return NewValidationError(fmt.Sprintf("role %s requires a club", a.Role))
	}
	if !a.Role.RequiresClub() && a.ClubID != "" {
		return NewValidationError(fmt.Sprintf("role %s cannot be attached to a club", a.Role))
	}
	return nil
}

func (a Affiliation) IsAdmin() bool { return a.Role == RoleAdmin }

func (a Affiliation) IsVisitor() bool { return a.Role == RoleVisitor }

func (a Affiliation) IsMemberOf(clubID string) bool {
	return a.Role == RoleMember && a.ClubID == clubID
}

func (a Affiliation) IsCoordinatorOf(clubID string) bool {
	return a.Role == RoleCoordinator && a.ClubID == clubID
}

// CanManage reports whether the holder may moderate the given club.
func (a Affiliation) CanManage(clubID string) bool {
	return a.IsAdmin() || a.IsCoordinatorOf(clubID)
}

func (a Affiliation) String() string {
	if a.ClubID == "" {
		return string(a.Role)
	}
	return fmt.Sprintf("%s(%s)", a.Role, a.ClubID)
}
