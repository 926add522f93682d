package employee

// ToEntity copies the user supplied fields. ID stays empty so the store
// assigns one on save.
func ToEntity(dto EmployeeDto) Employee {
	return Employee{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
	}
}

func ToDto(e Employee) EmployeeDto {
	return EmployeeDto{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
}
