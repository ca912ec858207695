package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var errDBDown = errors.New("database unavailable")

// memStore is an in-memory storage.Storage recording deletions.
type memStore struct {
	objects map[string][]byte
	deleted []string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (f *memStore) Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	if _, ok := f.objects[path]; ok {
		return storage.ErrAlreadyExists
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[path] = data
	return nil
}

func (f *memStore) Delete(ctx context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	delete(f.objects, path)
	return nil
}

func (f *memStore) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.objects[path]
	return ok, nil
}

func (f *memStore) GetURL(ctx context.Context, path string) (string, error) {
	return "https://cdn.test/bucket/" + path, nil
}

func newTestManager() (*managedfile.Manager, *memStore) {
	store := newMemStore()
	return managedfile.NewManager(store), store
}

func makeFileHeader(t *testing.T, field, filename, contentType string, size int) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

// fakeProjectRepo implements repositories.ProjectRepository in memory.
type fakeProjectRepo struct {
	items      map[string]*models.Project
	failCreate bool
	failUpdate bool
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{items: map[string]*models.Project{}}
}

func (r *fakeProjectRepo) Create(p *models.Project) error {
	if r.failCreate {
		return errDBDown
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	clone := *p
	r.items[p.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) FindByID(id string) (*models.Project, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProjectRepo) FindAll() ([]models.Project, error) {
	var out []models.Project
	for _, p := range r.items {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(p *models.Project) error {
	if r.failUpdate {
		return errDBDown
	}
	clone := *p
	r.items[p.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeProjectRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

// fakeResumeRepo implements repositories.ResumeRepository in memory.
type fakeResumeRepo struct {
	items      map[string]*models.Resume
	failCreate bool
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{items: map[string]*models.Resume{}}
}

func (r *fakeResumeRepo) Create(m *models.Resume) error {
	if r.failCreate {
		return errDBDown
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	clone := *m
	r.items[m.ID] = &clone
	return nil
}

func (r *fakeResumeRepo) FindByID(id string) (*models.Resume, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrResumeNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *fakeResumeRepo) FindAll() ([]models.Resume, error) {
	var out []models.Resume
	for _, m := range r.items {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeResumeRepo) Update(m *models.Resume) error {
	clone := *m
	r.items[m.ID] = &clone
	return nil
}

func (r *fakeResumeRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeResumeRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

// fakeSettingRepo implements repositories.SettingRepository in memory.
type fakeSettingRepo struct {
	setting    *models.Setting
	failUpdate bool
}

func (r *fakeSettingRepo) GetOrCreate() (*models.Setting, error) {
	if r.setting == nil {
		r.setting = &models.Setting{}
		r.setting.ID = uuid.NewString()
	}
	clone := *r.setting
	return &clone, nil
}

func (r *fakeSettingRepo) Update(s *models.Setting) error {
	if r.failUpdate {
		return errDBDown
	}
	clone := *s
	r.setting = &clone
	return nil
}

// fakeUserRepo implements repositories.UserRepository in memory.
type fakeUserRepo struct {
	items map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	clone := *u
	r.items[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(hashed string) (*models.User, error) {
	for _, u := range r.items {
		if u.PasswordResetToken != "" && u.PasswordResetToken == hashed {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(u *models.User) error {
	clone := *u
	r.items[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}
