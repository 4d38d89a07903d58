package models

// Developer is a member of the team credited by the admin service
type Developer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
