package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devpad-api/internal/application"
	"github.com/oksasatya/devpad-api/internal/domain/entity"
	repo "github.com/oksasatya/devpad-api/internal/domain/repository"
	"github.com/oksasatya/devpad-api/internal/interface/middleware"
	"github.com/oksasatya/devpad-api/pkg/helpers"
	"github.com/oksasatya/devpad-api/pkg/validation"
)

var setupOnce sync.Once

// newServer wires the real handlers, services, middleware and routes
// against in-memory collaborators, mirroring the module registration.
func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})

	logger := logrus.New()
	users := &userStore{users: map[string]*entity.User{}}
	projects := &projectStore{projects: map[string]*entity.Project{}}
	tokens := &tokenStore{tokens: map[string]string{}}

	authSvc := application.NewAuthService(users, tokens, helpers.NewBcryptHasher(), logger)
	projectSvc := application.NewProjectService(projects, logger)

	account := NewAccountHandler(authSvc, logger)
	project := NewProjectHandler(projectSvc, logger)

	r := gin.New()
	v1 := r.Group("/v1")
	v1.POST("/register", account.Register)
	v1.POST("/login", account.Login)

	auth := v1.Group("/")
	auth.Use(middleware.Auth(tokens))
	auth.GET("/user", account.Me)
	auth.POST("/logout", account.Logout)

	pr := v1.Group("/projects")
	pr.Use(middleware.Auth(tokens))
	pr.GET("", project.Index)
	pr.POST("", project.Store)
	pr.GET("/:id", project.Show)
	pr.PUT("/:id", project.Update)
	pr.PATCH("/:id", project.Update)
	pr.DELETE("/:id", project.Destroy)

	return r
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// In-memory collaborators.

type userStore struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func (s *userStore) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repo.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return repo.ErrUsernameTaken
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *userStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.Email == email })
}

func (s *userStore) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.Username == username })
}

func (s *userStore) find(match func(*entity.User) bool) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *userStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	return err == nil, nil
}

func (s *userStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.GetByUsername(ctx, username)
	return err == nil, nil
}

type projectStore struct {
	mu       sync.Mutex
	seq      int
	projects map[string]*entity.Project
}

func (s *projectStore) Create(_ context.Context, p *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	p.ID = uuid.NewString()
	p.CreatedAt = time.Unix(0, int64(s.seq)).UTC()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	s.projects[p.ID] = &cp
	return nil
}

func (s *projectStore) GetByID(_ context.Context, id string) (*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (s *projectStore) ListByOwner(_ context.Context, userID string) ([]*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Project, 0)
	for _, p := range s.projects {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *projectStore) Update(_ context.Context, p *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; !ok {
		return repo.ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	s.projects[p.ID] = &cp
	return nil
}

func (s *projectStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

type tokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (s *tokenStore) Mint(_ context.Context, userID string) (string, error) {
	tok, err := helpers.NewOpaqueToken(32)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tok] = userID
	return tok, nil
}

func (s *tokenStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if uid, ok := s.tokens[token]; ok {
		return uid, nil
	}
	return "", repo.ErrNotFound
}

func (s *tokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

var (
	_ repo.UserRepository    = (*userStore)(nil)
	_ repo.ProjectRepository = (*projectStore)(nil)
	_ repo.TokenStore        = (*tokenStore)(nil)
)

// register drives the real endpoint and returns the minted token.
func register(t *testing.T, r *gin.Engine, name, email, username, password string) string {
	t.Helper()
	body := `{"name":"` + name + `","email":"` + email + `","username":"` + username +
		`","password":"` + password + `","password_confirmation":"` + password + `"}`
	w := doJSON(r, http.MethodPost, "/v1/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: status %d body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("register response: %v", err)
	}
	return resp.Token
}
