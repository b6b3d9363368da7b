// Package stub implementa um dublê do serviço remoto de estoque sobre
// fixtures em memória. Serve o desenvolvimento local (cmd/stub-api) e os
// testes de integração dos stores; honra o contrato wire, inclusive os
// envelopes e os caminhos de erro {message}.
package stub

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-client/internal/application/dto"
)

// Server estado em memória do dublê.
type Server struct {
	mu            sync.Mutex
	produtos      []dto.ProductDTO
	movimentacoes []dto.MovimentationDTO
	usuarios      []dto.UserDTO
}

// New cria o dublê vazio.
func New() *Server {
	return &Server{}
}

// SeedProdutos adiciona produtos às fixtures.
func (s *Server) SeedProdutos(produtos ...dto.ProductDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.produtos = append(s.produtos, produtos...)
}

// SeedUsuarios adiciona usuários às fixtures.
func (s *Server) SeedUsuarios(usuarios ...dto.UserDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usuarios = append(s.usuarios, usuarios...)
}

// App monta a aplicação Fiber com todas as rotas do contrato.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/api/products", s.listProducts)
	app.Post("/api/products", s.createProduct)
	app.Get("/api/products/stats/dashboard", s.productStats)
	app.Get("/api/products/:id", s.getProduct)
	app.Patch("/api/products/:id", s.patchProduct)
	app.Delete("/api/products/:id", s.deleteProduct)

	app.Get("/api/movimentations", s.listMovimentations)
	app.Post("/api/movimentations", s.createMovimentation)
	app.Get("/api/movimentations/stats/dashboard", s.movimentationStats)
	app.Get("/api/movimentations/product/:productId", s.listMovimentationsByProduct)
	app.Get("/api/movimentations/:id", s.getMovimentation)

	app.Get("/api/users", s.listUsers)
	app.Post("/api/users", s.createUser)
	app.Delete("/api/users/:id", s.deleteUser)

	return app
}

// ── Produtos ──────────────────────────────────────────────────────────────────

func (s *Server) listProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	stockStatus := c.Query("stock_status")
	codigo := c.Query("codigo")
	serial := c.Query("serial_number")
	local := c.Query("local_storage")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.ProductDTO, 0, len(s.produtos))
	for _, p := range s.produtos {
		if category != "" && p.Category != category {
			continue
		}
		if codigo != "" && (p.Codigo == nil || *p.Codigo != codigo) {
			continue
		}
		if serial != "" && (p.SerialNumber == nil || *p.SerialNumber != serial) {
			continue
		}
		if local != "" && (p.LocalStorage == nil || *p.LocalStorage != local) {
			continue
		}
		if stockStatus != "" && classifyStock(p) != stockStatus {
			continue
		}
		out = append(out, p)
	}

	return c.JSON(dto.ProductListDTO{Success: true, Count: len(out), Data: out})
}

func classifyStock(p dto.ProductDTO) string {
	switch {
	case p.Quantity == 0:
		return dto.StockStatusOut
	case p.Quantity <= p.MinimalQuantity:
		return dto.StockStatusLow
	default:
		return dto.StockStatusIn
	}
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, _ := s.findProduct(c.Params("id")); p != nil {
		return c.JSON(*p)
	}
	return notFound(c, "produto não encontrado")
}

func (s *Server) createProduct(c *fiber.Ctx) error {
	var in dto.CreateProductDTO
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Name == "" || in.Category == "" {
		return badRequest(c, "name e category são obrigatórios")
	}
	if in.Quantity < 0 || in.MinimalQuantity < 0 {
		return badRequest(c, "quantidades não podem ser negativas")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := dto.ProductDTO{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Category:        in.Category,
		MinimalQuantity: in.MinimalQuantity,
		Quantity:        in.Quantity,
		Value:           in.Value,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Codigo != "" {
		p.Codigo = &in.Codigo
	}
	if in.SerialNumber != "" {
		p.SerialNumber = &in.SerialNumber
	}
	if in.LocalStorage != "" {
		p.LocalStorage = &in.LocalStorage
	}

	s.mu.Lock()
	s.produtos = append(s.produtos, p)
	s.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(p)
}

func (s *Server) patchProduct(c *fiber.Ctx) error {
	if c.Get("x-rfid") == "" {
		return badRequest(c, "header x-rfid é obrigatório")
	}
	var in dto.UpdateProductDTO
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, idx := s.findProduct(c.Params("id"))
	if p == nil {
		return notFound(c, "produto não encontrado")
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Codigo != nil {
		p.Codigo = in.Codigo
	}
	if in.SerialNumber != nil {
		p.SerialNumber = in.SerialNumber
	}
	if in.MinimalQuantity != nil {
		p.MinimalQuantity = *in.MinimalQuantity
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return badRequest(c, "quantidade não pode ser negativa")
		}
		p.Quantity = *in.Quantity
	}
	if in.Value != nil {
		p.Value = in.Value
	}
	if in.LocalStorage != nil {
		p.LocalStorage = in.LocalStorage
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	s.produtos[idx] = *p
	return c.JSON(*p)
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, idx := s.findProduct(c.Params("id"))
	if p == nil {
		return notFound(c, "produto não encontrado")
	}
	s.produtos = append(s.produtos[:idx], s.produtos[idx+1:]...)
	return c.JSON(dto.MessageDTO{Message: "produto removido"})
}

func (s *Server) productStats(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := dto.ProductStatsDTO{
		StatsByCategory: []dto.GroupStatsDTO{},
		StatsByLocation: []dto.GroupStatsDTO{},
	}
	porCategoria := map[string]*dto.GroupStatsDTO{}
	porLocal := map[string]*dto.GroupStatsDTO{}

	for _, p := range s.produtos {
		stats.TotalMaterials++
		stats.TotalQuantity += p.Quantity

		valor := decimal.Zero
		if p.Value != nil {
			valor = p.Value.Mul(decimal.NewFromInt(int64(p.Quantity)))
		}
		stats.TotalStockValue = stats.TotalStockValue.Add(valor)

		switch classifyStock(p) {
		case dto.StockStatusLow:
			stats.LowStockProducts++
		case dto.StockStatusOut:
			stats.OutOfStockProducts++
		}

		g := grupo(porCategoria, p.Category)
		g.Category = p.Category
		g.TotalMaterials++
		g.TotalQuantity += p.Quantity
		g.TotalValue = g.TotalValue.Add(valor)

		if p.LocalStorage != nil {
			l := grupo(porLocal, *p.LocalStorage)
			l.Location = *p.LocalStorage
			l.TotalMaterials++
			l.TotalQuantity += p.Quantity
			l.TotalValue = l.TotalValue.Add(valor)
		}
	}

	stats.StatsByCategory = ordenado(porCategoria)
	stats.StatsByLocation = ordenado(porLocal)

	return c.JSON(dto.ProductStatsResponseDTO{Success: true, Data: stats})
}

// ── Movimentações ─────────────────────────────────────────────────────────────

func (s *Server) listMovimentations(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := append([]dto.MovimentationDTO(nil), s.movimentacoes...)
	return c.JSON(dto.MovimentationListDTO{Success: true, Count: len(data), Data: data})
}

func (s *Server) getMovimentation(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movimentacoes {
		if m.ID == c.Params("id") {
			return c.JSON(m)
		}
	}
	return notFound(c, "movimentação não encontrada")
}

func (s *Server) listMovimentationsByProduct(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []dto.MovimentationDTO{}
	for _, m := range s.movimentacoes {
		if m.ProductID == c.Params("productId") {
			out = append(out, m)
		}
	}
	return c.JSON(dto.MovimentationListDTO{Success: true, Count: len(out), Data: out})
}

func (s *Server) createMovimentation(c *fiber.Ctx) error {
	var in dto.CreateMovimentationDTO
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Quantity <= 0 {
		return badRequest(c, "quantity deve ser positivo")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, idx := s.findProduct(in.ProductID)
	if p == nil {
		return notFound(c, "produto não encontrado")
	}

	// O servidor é a autoridade sobre a quantidade resultante.
	oldQty := p.Quantity
	switch in.Type {
	case dto.WireTypeInbound:
		p.Quantity += in.Quantity
	case dto.WireTypeOutbound:
		if p.Quantity < in.Quantity {
			return badRequest(c, "estoque insuficiente para a saída")
		}
		p.Quantity -= in.Quantity
	case dto.WireTypeAdjustment:
		p.Quantity = in.Quantity
	case dto.WireTypeTransfer:
		// transferência não altera quantidade, apenas o local
	default:
		return badRequest(c, "tipo de movimentação desconhecido")
	}

	m := dto.MovimentationDTO{
		ID:                 uuid.NewString(),
		Type:               in.Type,
		ProductID:          in.ProductID,
		MovimentedBy:       in.MovimentedBy,
		Quantity:           in.Quantity,
		ProductOldQuantity: &oldQty,
		ProductNewQuantity: &p.Quantity,
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
		Product: &dto.ProductRefDTO{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
		},
	}
	if in.Type == dto.WireTypeTransfer && in.NewLocation != "" {
		m.ProductOldLocal = p.LocalStorage
		loc := in.NewLocation
		p.LocalStorage = &loc
		m.LocalStorage = &loc
	}
	if in.Notes != "" {
		notes := in.Notes
		m.Appointment = &notes
	}

	s.produtos[idx] = *p
	s.movimentacoes = append(s.movimentacoes, m)

	return c.Status(fiber.StatusCreated).JSON(dto.MovimentationCreatedDTO{Success: true, Data: m})
}

func (s *Server) movimentationStats(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	s.mu.Lock()
	defer s.mu.Unlock()

	byType := map[string]int{}
	qtyByType := map[string]int{}
	for _, m := range s.movimentacoes {
		byType[m.Type]++
		qtyByType[m.Type] += m.Quantity
	}

	statsByType := make([]dto.TypeStatsDTO, 0, len(byType))
	for _, t := range []string{dto.WireTypeInbound, dto.WireTypeOutbound, dto.WireTypeTransfer, dto.WireTypeAdjustment} {
		if byType[t] == 0 {
			continue
		}
		statsByType = append(statsByType, dto.TypeStatsDTO{
			Type:          t,
			Count:         byType[t],
			TotalQuantity: qtyByType[t],
		})
	}

	recentes := append([]dto.MovimentationDTO(nil), s.movimentacoes...)
	sort.SliceStable(recentes, func(i, j int) bool {
		return strings.Compare(recentes[i].CreatedAt, recentes[j].CreatedAt) > 0
	})
	if len(recentes) > limit {
		recentes = recentes[:limit]
	}

	return c.JSON(dto.MovimentationStatsResponseDTO{
		Success: true,
		Message: "estatísticas de movimentações",
		Data: dto.MovimentationStatsDTO{
			TotalMovimentations:  len(s.movimentacoes),
			MovimentationsByType: byType,
			StatsByType:          statsByType,
			RecentMovimentations: recentes,
		},
	})
}

// ── Usuários ──────────────────────────────────────────────────────────────────

func (s *Server) listUsers(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := append([]dto.UserDTO(nil), s.usuarios...)
	return c.JSON(dto.UserListDTO{Success: true, Count: len(data), Data: data})
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var in dto.CreateUserDTO
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.Matricula <= 0 {
		return badRequest(c, "matricula é obrigatória")
	}

	u := dto.UserDTO{
		ID:        uuid.NewString(),
		Matricula: in.Matricula,
	}

	s.mu.Lock()
	s.usuarios = append(s.usuarios, u)
	s.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(u)
}

func (s *Server) deleteUser(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.usuarios {
		if u.ID == c.Params("id") {
			s.usuarios = append(s.usuarios[:i], s.usuarios[i+1:]...)
			return c.JSON(dto.MessageDTO{Message: "usuário removido"})
		}
	}
	return notFound(c, "usuário não encontrado")
}

// ── helpers ───────────────────────────────────────────────────────────────────

// findProduct procura pelo id; o chamador deve segurar o lock.
func (s *Server) findProduct(id string) (*dto.ProductDTO, int) {
	for i := range s.produtos {
		if s.produtos[i].ID == id {
			p := s.produtos[i]
			return &p, i
		}
	}
	return nil, -1
}

func grupo(m map[string]*dto.GroupStatsDTO, chave string) *dto.GroupStatsDTO {
	if g, ok := m[chave]; ok {
		return g
	}
	g := &dto.GroupStatsDTO{}
	m[chave] = g
	return g
}

func ordenado(m map[string]*dto.GroupStatsDTO) []dto.GroupStatsDTO {
	chaves := make([]string, 0, len(m))
	for k := range m {
		chaves = append(chaves, k)
	}
	sort.Strings(chaves)
	out := make([]dto.GroupStatsDTO, 0, len(m))
	for _, k := range chaves {
		out = append(out, *m[k])
	}
	return out
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorDTO{Message: msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorDTO{Message: msg})
}
