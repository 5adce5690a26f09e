package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"lakd/internal/models"
)

var ErrTemplateNotFound = errors.New("template not found")

type TemplateServiceInterface interface {
	List() []models.Template
	GetByID(id string) (models.Template, bool)
	Add(t models.Template) (models.Template, error)
	Update(id string, upd models.TemplateUpdate) (models.Template, error)
	Delete(id string) error
	EnsureDefaults()
}

// TemplateService is the catalog of reusable day templates. The id is the
// only unique key; names may repeat.
type TemplateService struct {
	mu    sync.Mutex
	store StoreServiceInterface
}

func NewTemplateService(store StoreServiceInterface) TemplateServiceInterface {
	return &TemplateService{store: store}
}

// EnsureDefaults seeds the built-in catalog when the store holds none.
func (ts *TemplateService) EnsureDefaults() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if len(ts.store.GetTemplates()) == 0 {
		ts.store.PutTemplates(models.DefaultTemplates())
	}
}

func (ts *TemplateService) List() []models.Template {
	return ts.store.GetTemplates()
}

func (ts *TemplateService) GetByID(id string) (models.Template, bool) {
	for _, t := range ts.store.GetTemplates() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Template{}, false
}

func (ts *TemplateService) Add(t models.Template) (models.Template, error) {
	if err := t.Validate(); err != nil {
		return models.Template{}, err
	}
	if t.ID == "" {
		t.ID = "template-" + uuid.NewString()
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()
	templates := ts.store.GetTemplates()
	ts.store.PutTemplates(append(templates, t))
	return t, nil
}

func (ts *TemplateService) Update(id string, upd models.TemplateUpdate) (models.Template, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	templates := ts.store.GetTemplates()
	for i, t := range templates {
		if t.ID != id {
			continue
		}
		merged, err := upd.Apply(t)
		if err != nil {
			return models.Template{}, err
		}
		templates[i] = merged
		ts.store.PutTemplates(templates)
		return merged, nil
	}
	return models.Template{}, ErrTemplateNotFound
}

func (ts *TemplateService) Delete(id string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	templates := ts.store.GetTemplates()
	kept := templates[:0]
	found := false
	for _, t := range templates {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrTemplateNotFound
	}
	ts.store.PutTemplates(kept)
	return nil
}
