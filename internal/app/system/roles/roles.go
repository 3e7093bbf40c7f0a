// Package roles defines the user role enum.
//
// Roles are advisory for this service: handlers validate that writes only
// store known roles, but no endpoint enforces role-based access.
package roles

// Known roles. Every user is created as Donor.
const (
	Donor     = "donor"
	Volunteer = "volunteer"
	Admin     = "admin"
)

// IsValid reports whether r is one of the known roles. Any known role may
// be assigned from any other; there is no transition graph for roles.
func IsValid(r string) bool {
	switch r {
	case Donor, Volunteer, Admin:
		return true
	}
	return false
}
