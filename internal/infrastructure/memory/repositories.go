package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

var (
	_ repository.UserRepository        = (*UserRepo)(nil)
	_ repository.CategoryRepository    = (*CategoryRepo)(nil)
	_ repository.WorkflowRepository    = (*WorkflowRepo)(nil)
	_ repository.EmployeeRepository    = (*EmployeeRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.SaleRepository        = (*SaleRepo)(nil)
	_ repository.PerformanceRepository = (*PerformanceRepo)(nil)
	_ repository.LogRepository         = (*LogRepo)(nil)
)

// Store agrupa un juego completo de repositorios en memoria.
type Store struct {
	Users        *UserRepo
	Categories   *CategoryRepo
	Workflows    *WorkflowRepo
	Employees    *EmployeeRepo
	Products     *ProductRepo
	Sales        *SaleRepo
	Performances *PerformanceRepo
	Logs         *LogRepo
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		Users:        NewUserRepository(),
		Categories:   NewCategoryRepository(),
		Workflows:    NewWorkflowRepository(),
		Employees:    NewEmployeeRepository(),
		Products:     NewProductRepository(),
		Sales:        NewSaleRepository(),
		Performances: NewPerformanceRepository(),
		Logs:         NewLogRepository(),
	}
}

// ─── Users ─────────────────────────────────────────────────────────────────────

// UserRepo usuarios en memoria; el email es único.
type UserRepo struct {
	mu sync.Mutex // serializa el chequeo de email con la escritura
	t  *table[entity.User]
}

func NewUserRepository() *UserRepo {
	return &UserRepo{t: newTable(
		func(u *entity.User) string { return u.ID },
		func(u *entity.User) time.Time { return u.CreatedAt },
	)}
}

func (r *UserRepo) emailTaken(email, exceptID string) bool {
	for _, u := range r.t.filter(nil, false) {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(user.Email, "") {
		return domain.ErrEmailAlreadyExists
	}
	r.t.put(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.t.get(id), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.t.filter(nil, false) {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(user.Email, user.ID) {
		return domain.ErrEmailAlreadyExists
	}
	r.t.replace(user)
	return nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	return r.t.filter(nil, true), nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

// ─── Categories ────────────────────────────────────────────────────────────────

// CategoryRepo categorías en memoria; el código es único.
type CategoryRepo struct {
	mu sync.Mutex
	t  *table[entity.Category]
}

func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{t: newTable(
		func(c *entity.Category) string { return c.ID },
		func(*entity.Category) time.Time { return time.Time{} },
	)}
}

func (r *CategoryRepo) codeTaken(code, exceptID string) bool {
	for _, c := range r.t.filter(nil, false) {
		if c.Code == code && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.codeTaken(c.Code, "") {
		return domain.ErrDuplicate
	}
	r.t.put(c)
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.t.get(id), nil
}

func (r *CategoryRepo) GetByCode(_ context.Context, code string) (*entity.Category, error) {
	for _, c := range r.t.filter(nil, false) {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.codeTaken(c.Code, c.ID) {
		return domain.ErrDuplicate
	}
	r.t.replace(c)
	return nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	list := r.t.filter(nil, false)
	sortBy(list, func(c *entity.Category) string { return c.Code })
	return list, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

// ─── Workflows ─────────────────────────────────────────────────────────────────

type WorkflowRepo struct {
	t *table[entity.Workflow]
}

func NewWorkflowRepository() *WorkflowRepo {
	return &WorkflowRepo{t: newTable(
		func(w *entity.Workflow) string { return w.ID },
		func(w *entity.Workflow) time.Time { return w.CreatedAt },
	)}
}

func (r *WorkflowRepo) Create(_ context.Context, w *entity.Workflow) error {
	r.t.put(w)
	return nil
}

func (r *WorkflowRepo) GetByID(_ context.Context, id string) (*entity.Workflow, error) {
	return r.t.get(id), nil
}

func (r *WorkflowRepo) Update(_ context.Context, w *entity.Workflow) error {
	r.t.replace(w)
	return nil
}

func (r *WorkflowRepo) List(_ context.Context) ([]*entity.Workflow, error) {
	return r.t.filter(nil, true), nil
}

func (r *WorkflowRepo) ListByOwner(_ context.Context, userID string) ([]*entity.Workflow, error) {
	return r.t.filter(func(w *entity.Workflow) bool { return w.UserID == userID }, true), nil
}

func (r *WorkflowRepo) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

// ─── Employees ─────────────────────────────────────────────────────────────────

type EmployeeRepo struct {
	t *table[entity.Employee]
}

func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{t: newTable(
		func(e *entity.Employee) string { return e.ID },
		func(e *entity.Employee) time.Time { return e.CreatedAt },
	)}
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.t.put(e)
	return nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return r.t.get(id), nil
}

func (r *EmployeeRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Employee, error) {
	set := toSet(ids)
	return r.t.filter(func(e *entity.Employee) bool { return set[e.ID] }, false), nil
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.t.replace(e)
	return nil
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	return r.t.filter(nil, true), nil
}

func (r *EmployeeRepo) ListByWorkflow(_ context.Context, workflowID string) ([]*entity.Employee, error) {
	return r.t.filter(func(e *entity.Employee) bool { return e.WorkflowID == workflowID }, true), nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

// ─── Products ──────────────────────────────────────────────────────────────────

type ProductRepo struct {
	t *table[entity.Product]
}

func NewProductRepository() *ProductRepo {
	return &ProductRepo{t: newTable(
		func(p *entity.Product) string { return p.ID },
		func(p *entity.Product) time.Time { return p.CreatedAt },
	)}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.t.put(p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.t.get(id), nil
}

func (r *ProductRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	set := toSet(ids)
	return r.t.filter(func(p *entity.Product) bool { return set[p.ID] }, false), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.t.replace(p)
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.t.filter(nil, true), nil
}

func (r *ProductRepo) ListByWorkflow(_ context.Context, workflowID string) ([]*entity.Product, error) {
	return r.t.filter(func(p *entity.Product) bool { return p.WorkflowID == workflowID }, true), nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

// ─── Sales ─────────────────────────────────────────────────────────────────────

type SaleRepo struct {
	t *table[entity.Sale]
}

func NewSaleRepository() *SaleRepo {
	return &SaleRepo{t: newTable(
		func(s *entity.Sale) string { return s.ID },
		func(s *entity.Sale) time.Time { return s.CreatedAt },
	)}
}

func (r *SaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.t.put(s)
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	return r.t.get(id), nil
}

func (r *SaleRepo) Update(_ context.Context, s *entity.Sale) error {
	r.t.replace(s)
	return nil
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	return r.t.filter(nil, false), nil
}

func (r *SaleRepo) ListByWorkflow(_ context.Context, workflowID string) ([]*entity.Sale, error) {
	return r.t.filter(func(s *entity.Sale) bool { return s.WorkflowID == workflowID }, false), nil
}

func (r *SaleRepo) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

// ─── Performance records ───────────────────────────────────────────────────────

type PerformanceRepo struct {
	t *table[entity.PerformanceRecord]
}

func NewPerformanceRepository() *PerformanceRepo {
	return &PerformanceRepo{t: newTable(
		func(p *entity.PerformanceRecord) string { return p.ID },
		func(p *entity.PerformanceRecord) time.Time { return p.CreatedAt },
	)}
}

func (r *PerformanceRepo) Create(_ context.Context, p *entity.PerformanceRecord) error {
	r.t.put(p)
	return nil
}

func (r *PerformanceRepo) GetByID(_ context.Context, id string) (*entity.PerformanceRecord, error) {
	return r.t.get(id), nil
}

func (r *PerformanceRepo) Update(_ context.Context, p *entity.PerformanceRecord) error {
	r.t.replace(p)
	return nil
}

func (r *PerformanceRepo) List(_ context.Context) ([]*entity.PerformanceRecord, error) {
	return r.t.filter(nil, false), nil
}

func (r *PerformanceRepo) ListByWorkflow(_ context.Context, workflowID string) ([]*entity.PerformanceRecord, error) {
	return r.t.filter(func(p *entity.PerformanceRecord) bool { return p.WorkflowID == workflowID }, false), nil
}

func (r *PerformanceRepo) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

// ─── Logs ──────────────────────────────────────────────────────────────────────

type LogRepo struct {
	t *table[entity.Log]
}

func NewLogRepository() *LogRepo {
	return &LogRepo{t: newTable(
		func(l *entity.Log) string { return l.ID },
		func(l *entity.Log) time.Time { return l.CreatedAt },
	)}
}

func (r *LogRepo) Create(_ context.Context, l *entity.Log) error {
	r.t.put(l)
	return nil
}

func (r *LogRepo) List(_ context.Context) ([]*entity.Log, error) {
	return r.t.filter(nil, true), nil
}

func (r *LogRepo) ListByWorkflow(_ context.Context, workflowID string) ([]*entity.Log, error) {
	return r.t.filter(func(l *entity.Log) bool { return l.WorkflowID == workflowID }, true), nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// ── Conteos (panel de administración) ────────────────────────────────────────

func (r *UserRepo) Count(_ context.Context) (int, error)        { return r.t.count(), nil }
func (r *CategoryRepo) Count(_ context.Context) (int, error)    { return r.t.count(), nil }
func (r *WorkflowRepo) Count(_ context.Context) (int, error)    { return r.t.count(), nil }
func (r *EmployeeRepo) Count(_ context.Context) (int, error)    { return r.t.count(), nil }
func (r *ProductRepo) Count(_ context.Context) (int, error)     { return r.t.count(), nil }
func (r *SaleRepo) Count(_ context.Context) (int, error)        { return r.t.count(), nil }
func (r *PerformanceRepo) Count(_ context.Context) (int, error) { return r.t.count(), nil }
func (r *LogRepo) Count(_ context.Context) (int, error)         { return r.t.count(), nil }

func (r *WorkflowRepo) CountByCategory(_ context.Context) (map[string]int, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	out := make(map[string]int)
	for _, w := range r.t.rows {
		out[w.CategoryID]++
	}
	return out, nil
}
