package api

import (
	"context"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/repository"
)

const usersPath = "/api/users"

// UsersService fachada de /api/users.
type UsersService struct {
	client *Client
}

var _ repository.UserAPI = (*UsersService)(nil)

// NewUsersService constrói a fachada sobre o executor genérico.
func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

// List busca a lista de usuários autorizados.
func (s *UsersService) List(ctx context.Context) ([]dto.UserDTO, error) {
	var out dto.UserListDTO
	if err := s.client.Get(ctx, usersPath, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Create cadastra um usuário pela matrícula.
func (s *UsersService) Create(ctx context.Context, matricula int) (*dto.UserDTO, error) {
	var out dto.UserDTO
	if err := s.client.Post(ctx, usersPath, dto.CreateUserDTO{Matricula: matricula}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete remove um usuário.
func (s *UsersService) Delete(ctx context.Context, id string) error {
	var out dto.MessageDTO
	return s.client.Delete(ctx, usersPath+"/"+id, &out)
}
