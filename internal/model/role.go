package model

// Role is the access level a section grants to its members.
type Role string

const (
	RoleOrderer       Role = "orderer"
	RoleApprover      Role = "approver"
	RoleSupplier      Role = "supplier"
	RoleAdministrator Role = "administrator"
)
