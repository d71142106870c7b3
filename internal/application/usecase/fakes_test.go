package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/scannercafe/sync-api/internal/application/dto"
	"github.com/scannercafe/sync-api/internal/domain"
	"github.com/scannercafe/sync-api/internal/domain/entity"
	"github.com/scannercafe/sync-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Replican el contrato
// de los puertos: (nil, nil) cuando no existe, ErrDuplicate en claves repetidas
// y partición estricta por workspaceKey.
// ──────────────────────────────────────────────────────────────────────────────

type key struct{ workspace, id string }

// ---- workspaces ----

type fakeWorkspaceRepo struct {
	bySyncKey map[string]*entity.Workspace
	// failCreateWith fuerza el error del próximo Create (simula carreras).
	failCreateWith error
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{bySyncKey: make(map[string]*entity.Workspace)}
}

func (r *fakeWorkspaceRepo) Create(_ context.Context, ws *entity.Workspace) error {
	if r.failCreateWith != nil {
		err := r.failCreateWith
		r.failCreateWith = nil
		return err
	}
	if _, ok := r.bySyncKey[ws.SyncKey]; ok {
		return domain.ErrDuplicate
	}
	cp := *ws
	r.bySyncKey[ws.SyncKey] = &cp
	return nil
}

func (r *fakeWorkspaceRepo) GetBySyncKey(_ context.Context, syncKey string) (*entity.Workspace, error) {
	ws, ok := r.bySyncKey[syncKey]
	if !ok {
		return nil, nil
	}
	cp := *ws
	return &cp, nil
}

type fakeWorkspaceCache struct {
	entries map[string]*entity.Workspace
	hits    int
	sets    int
}

func newFakeWorkspaceCache() *fakeWorkspaceCache {
	return &fakeWorkspaceCache{entries: make(map[string]*entity.Workspace)}
}

func (c *fakeWorkspaceCache) Get(_ context.Context, syncKey string) (*entity.Workspace, error) {
	ws, ok := c.entries[syncKey]
	if !ok {
		return nil, nil
	}
	c.hits++
	return ws, nil
}

func (c *fakeWorkspaceCache) Set(_ context.Context, ws *entity.Workspace) error {
	c.sets++
	c.entries[ws.SyncKey] = ws
	return nil
}

// ---- productos ----

type fakeProductRepo struct {
	products map[key]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[key]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	k := key{p.WorkspaceKey, p.ID}
	if _, ok := r.products[k]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.products[k] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, workspaceKey, id string) (*entity.Product, error) {
	p, ok := r.products[key{workspaceKey, id}]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByBarcode(_ context.Context, workspaceKey, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.WorkspaceKey == workspaceKey && p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindBarcodeOwner(_ context.Context, workspaceKey, barcode, excludeID string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.WorkspaceKey == workspaceKey && p.ID != excludeID && p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListByWorkspace(_ context.Context, workspaceKey string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.WorkspaceKey == workspaceKey {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) (bool, error) {
	k := key{p.WorkspaceKey, p.ID}
	if _, ok := r.products[k]; !ok {
		return false, nil
	}
	cp := *p
	r.products[k] = &cp
	return true, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, workspaceKey, id string) error {
	delete(r.products, key{workspaceKey, id})
	return nil
}

// ---- ventas ----

type fakeSaleRepo struct {
	sales map[key]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[key]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	k := key{s.WorkspaceKey, s.ID}
	if _, ok := r.sales[k]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	r.sales[k] = &cp
	return nil
}

func (r *fakeSaleRepo) InsertIfAbsent(_ context.Context, s *entity.Sale) (repository.InsertOutcome, error) {
	k := key{s.WorkspaceKey, s.ID}
	if _, ok := r.sales[k]; ok {
		return repository.OutcomeSkipped, nil
	}
	cp := *s
	r.sales[k] = &cp
	return repository.OutcomeInserted, nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, workspaceKey, id string) (*entity.Sale, error) {
	s, ok := r.sales[key{workspaceKey, id}]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) ListByWorkspace(_ context.Context, workspaceKey string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.WorkspaceKey == workspaceKey {
			cp := *s
			out = append(out, &cp)
		}
	}
	sortSalesDesc(out)
	return out, nil
}

func (r *fakeSaleRepo) ListByDateRange(_ context.Context, workspaceKey string, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.WorkspaceKey != workspaceKey {
			continue
		}
		if s.CreatedAt.Before(from) || s.CreatedAt.After(to) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sortSalesDesc(out)
	return out, nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, workspaceKey, id string) error {
	delete(r.sales, key{workspaceKey, id})
	return nil
}

func (r *fakeSaleRepo) DeleteAll(_ context.Context, workspaceKey string) (int64, error) {
	var n int64
	for k := range r.sales {
		if k.workspace == workspaceKey {
			delete(r.sales, k)
			n++
		}
	}
	return n, nil
}

func sortSalesDesc(sales []*entity.Sale) {
	sort.Slice(sales, func(i, j int) bool { return sales[i].CreatedAt.After(sales[j].CreatedAt) })
}

// ---- settings ----

type fakeSettingsRepo struct {
	rows map[string]*entity.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: make(map[string]*entity.Settings)}
}

func (r *fakeSettingsRepo) Get(_ context.Context, workspaceKey string) (*entity.Settings, error) {
	s, ok := r.rows[workspaceKey]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, s *entity.Settings) error {
	cp := *s
	r.rows[s.WorkspaceKey] = &cp
	return nil
}

// ---- notificador ----

type fakeNotifier struct {
	events []struct {
		workspace, kind string
		result          dto.BulkSyncResponse
	}
}

func (n *fakeNotifier) NotifyBulkResult(workspaceKey, kind string, result *dto.BulkSyncResponse) {
	n.events = append(n.events, struct {
		workspace, kind string
		result          dto.BulkSyncResponse
	}{workspaceKey, kind, *result})
}
