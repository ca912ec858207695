package services

import (
	"context"
	"testing"

	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertificateRepo struct {
	items map[string]*models.Certificate
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{items: map[string]*models.Certificate{}}
}

func (r *fakeCertificateRepo) Create(c *models.Certificate) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *fakeCertificateRepo) FindByID(id string) (*models.Certificate, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrCertificateNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCertificateRepo) FindAll() ([]models.Certificate, error) {
	var out []models.Certificate
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCertificateRepo) Update(c *models.Certificate) error {
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *fakeCertificateRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCertificateRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

type fakeMessageRepo struct {
	items map[string]*models.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{items: map[string]*models.Message{}}
}

func (r *fakeMessageRepo) Create(m *models.Message) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	clone := *m
	r.items[m.ID] = &clone
	return nil
}

func (r *fakeMessageRepo) FindByID(id string) (*models.Message, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrMessageNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *fakeMessageRepo) FindAll() ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.items {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMessageRepo) FindRecent(limit int) ([]models.Message, error) {
	all, _ := r.FindAll()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeMessageRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeMessageRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

func TestDashboardSummaryCounts(t *testing.T) {
	projects := newFakeProjectRepo()
	resumes := newFakeResumeRepo()
	certificates := newFakeCertificateRepo()
	messages := newFakeMessageRepo()
	skills := newFakeSkillRepo()

	projectSvc := NewProjectService(projects, mustManager())
	_, err := projectSvc.Create(context.Background(), &dto.CreateProjectRequest{
		Title: "One", Description: "D",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, messages.Create(&models.Message{Name: "A", Email: "a@example.com", Body: "hi"}))
	require.NoError(t, messages.Create(&models.Message{Name: "B", Email: "b@example.com", Body: "yo"}))

	skillSvc := NewSkillService(skills)
	_, err = skillSvc.CreateCategory(&dto.CreateSkillCategoryRequest{
		Name: "Backend", Skills: []string{"Go", "Postgres"},
	})
	require.NoError(t, err)
	_, err = skillSvc.CreateCategory(&dto.CreateSkillCategoryRequest{
		Name: "Frontend", Skills: []string{"React"},
	})
	require.NoError(t, err)

	svc := NewDashboardService(projects, resumes, certificates, messages, skills)
	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.ProjectCount)
	assert.Equal(t, int64(0), summary.ResumeCount)
	assert.Equal(t, int64(0), summary.CertificateCount)
	assert.Equal(t, int64(2), summary.MessageCount)
	assert.Equal(t, int64(3), summary.SkillCount, "skills are counted across all categories")
	assert.Len(t, summary.RecentMessages, 2)
}

func mustManager() *managedfile.Manager {
	m, _ := newTestManager()
	return m
}
