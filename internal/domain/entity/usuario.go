package entity

// Usuario representa um usuário autorizado a operar o estoque.
type Usuario struct {
	ID           string
	Nome         string
	Matricula    int
	CodigoCracha string
	Cargo        string
}
