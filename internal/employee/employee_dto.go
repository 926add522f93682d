package employee

// EmployeeDto is the wire form used for both requests and responses. ID is
// ignored on input; the store assigns it.
type EmployeeDto struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
