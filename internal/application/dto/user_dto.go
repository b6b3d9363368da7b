package dto

// UserDTO representação wire de um usuário autorizado.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Matricula int    `json:"matricula"`
	BadgeCode string `json:"badge_code"`
	Role      string `json:"role"`
}

// UserListDTO envelope de GET /api/users.
type UserListDTO struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []UserDTO `json:"data"`
}

// CreateUserDTO payload de POST /api/users.
type CreateUserDTO struct {
	Matricula int `json:"matricula"`
}
