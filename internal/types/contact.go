// Package types provides type definitions for structured data used throughout the referral-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Contact represents a single LinkedIn-style contact record supplied by the
// external contact store. Tag fields are already decoded into sets; the store
// adapter is responsible for deserializing whatever on-disk representation
// (JSON-encoded columns, CSV cells) the host application uses.
type Contact struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Position           string   `json:"position"`
	Company            string   `json:"company"`
	Email              string   `json:"email,omitempty"`
	LinkedIn           string   `json:"linkedin,omitempty"`
	Skills             []string `json:"skills_tag,omitempty"`
	SeniorityTag       string   `json:"seniority_tag,omitempty"`
	FunctionTag        string   `json:"function_tag,omitempty"`
	IndustryTags       []string `json:"company_industry_tags,omitempty"`
	LocationRaw        string   `json:"location_raw,omitempty"`
	EmployeeConnection string   `json:"employee_connection,omitempty"`
}

// FullName returns the contact's display name, used as the key into the
// manual-tag boost registry.
func (c *Contact) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
