package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"table-order/models"
)

type memCategories struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Category
}

func newMemCategories() *memCategories {
	return &memCategories{rows: map[int64]models.Category{}}
}

func (m *memCategories) FindAll(_ context.Context, f models.CategoryFilter) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Category{}
	for _, c := range m.rows {
		if f.Active != nil && c.IsActive != *f.Active {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategories) FindByID(_ context.Context, id int64) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *memCategories) Create(_ context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Name == c.Name {
			return ErrDuplicate
		}
	}
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt, c.UpdatedAt = time.Now(), time.Now()
	m.rows[c.ID] = *c
	return nil
}

func (m *memCategories) Update(_ context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[c.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range m.rows {
		if id != c.ID && existing.Name == c.Name {
			return ErrDuplicate
		}
	}
	m.rows[c.ID] = *c
	return nil
}

func (m *memCategories) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memCategories) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

type memMenus struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Menu
}

func newMemMenus() *memMenus {
	return &memMenus{rows: map[int64]models.Menu{}}
}

func (m *memMenus) FindAll(_ context.Context, f models.MenuFilter) ([]models.Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Menu{}
	for _, menu := range m.rows {
		if f.CategoryID != nil && menu.CategoryID != *f.CategoryID {
			continue
		}
		if f.Available != nil && menu.IsAvailable != *f.Available {
			continue
		}
		out = append(out, menu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memMenus) FindByID(_ context.Context, id int64) (*models.Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	menu, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &menu, nil
}

func (m *memMenus) Create(_ context.Context, menu *models.Menu) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	menu.ID = m.nextID
	m.rows[menu.ID] = *menu
	return nil
}

func (m *memMenus) Update(_ context.Context, menu *models.Menu) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[menu.ID]; !ok {
		return ErrNotFound
	}
	m.rows[menu.ID] = *menu
	return nil
}

func (m *memMenus) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memMenus) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, menu := range m.rows {
		if menu.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *memMenus) Counts(context.Context) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	available := 0
	for _, menu := range m.rows {
		if menu.IsAvailable {
			available++
		}
	}
	return len(m.rows), available, nil
}

type memOrders struct {
	mu      sync.Mutex
	nextID  int64
	rows    []models.Order
	since   time.Time
	created int
}

func newMemOrders() *memOrders {
	return &memOrders{}
}

func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.OrderItem(nil), o.Items...)
	return o
}

func (m *memOrders) Create(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	o.ID = m.nextID
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	o.UpdatedAt = o.CreatedAt
	m.rows = append(m.rows, cloneOrder(*o))
	m.created++
	return nil
}

func (m *memOrders) FindAll(_ context.Context, f models.OrderFilter) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		o := m.rows[i]
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.TableNumber != nil && o.TableNumber != *f.TableNumber {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (m *memOrders) FindByID(_ context.Context, id int64) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.rows {
		if o.ID == id {
			c := cloneOrder(o)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memOrders) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	m.mu.Lock()
	found := false
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Status = status
			found = true
		}
	}
	m.mu.Unlock()
	if !found {
		return nil, ErrNotFound
	}
	return m.FindByID(ctx, id)
}

func (m *memOrders) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.rows {
		if o.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memOrders) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	all, _ := m.FindAll(ctx, models.OrderFilter{})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memOrders) CountByStatus(context.Context) (models.OrderStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var s models.OrderStats
	for _, o := range m.rows {
		s.Total++
		switch o.Status {
		case models.OrderStatusPending:
			s.Pending++
		case models.OrderStatusCooking:
			s.Cooking++
		case models.OrderStatusCompleted:
			s.Completed++
		}
	}
	return s, nil
}

func (m *memOrders) SummarySince(_ context.Context, since time.Time) (int, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.since = since
	count, revenue := 0, 0.0
	for _, o := range m.rows {
		if !o.CreatedAt.Before(since) {
			count++
			revenue += o.TotalPrice
		}
	}
	return count, revenue, nil
}

func (m *memOrders) PopularItems(_ context.Context, limit int) ([]models.PopularItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byMenu := map[int64]*models.PopularItem{}
	for _, o := range m.rows {
		for _, it := range o.Items {
			p, ok := byMenu[it.MenuID]
			if !ok {
				p = &models.PopularItem{MenuID: it.MenuID, Name: it.Name}
				byMenu[it.MenuID] = p
			}
			p.Count += it.Quantity
		}
	}
	out := []models.PopularItem{}
	for _, p := range byMenu {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].MenuID < out[j].MenuID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[int64]models.User{}}
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Username == u.Username {
			return ErrDuplicate
		}
	}
	m.nextID++
	u.ID = m.nextID
	m.rows[u.ID] = *u
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memUsers) FindByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) FindAll(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUsers) Update(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[u.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range m.rows {
		if id != u.ID && existing.Username == u.Username {
			return ErrDuplicate
		}
	}
	m.rows[u.ID] = *u
	return nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memUsers) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

type memTables struct {
	mu   sync.Mutex
	rows []models.Table
}

func (m *memTables) FindAll(context.Context) ([]models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Table{}, m.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].TableNumber < out[j].TableNumber })
	return out, nil
}

func (m *memTables) FindByQRCode(_ context.Context, qrCode string) (*models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.rows {
		if t.QRCode == qrCode {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memTables) Upsert(_ context.Context, t *models.Table) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.TableNumber == t.TableNumber || existing.QRCode == t.QRCode {
			return false, nil
		}
	}
	t.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *t)
	return true, nil
}

type countingCache struct {
	entries     map[string][]models.Menu
	hits        int
	invalidated int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: map[string][]models.Menu{}}
}

func (c *countingCache) Get(_ context.Context, key string) ([]models.Menu, bool) {
	menus, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return menus, ok
}

func (c *countingCache) Set(_ context.Context, key string, menus []models.Menu) {
	c.entries[key] = menus
}

func (c *countingCache) Invalidate(context.Context) {
	c.entries = map[string][]models.Menu{}
	c.invalidated++
}

var (
	_ CategoryStore = (*memCategories)(nil)
	_ MenuStore     = (*memMenus)(nil)
	_ OrderStore    = (*memOrders)(nil)
	_ UserStore     = (*memUsers)(nil)
	_ TableStore    = (*memTables)(nil)
	_ MenuCache     = (*countingCache)(nil)
)
