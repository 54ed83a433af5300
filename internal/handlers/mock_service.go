package handlers

import (
	"context"

	"watchlist/internal/models"
	"watchlist/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginToken   string
	loginUser    *models.User
	loginErr     error
	parseID      int
	parseErr     error
	user         *models.User
	userErr      error
	provisionID  int
	provisionErr error

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
	loginCalls        int
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	m.loginCalls++
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginUser, m.loginErr
}
func (m *mockAuth) ParseSession(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) UserByID(ctx context.Context, id int) (*models.User, error) {
	return m.user, m.userErr
}
func (m *mockAuth) ProvisionOwner(ctx context.Context, name, username, password string) (int, error) {
	return m.provisionID, m.provisionErr
}

type mockWatchlist struct {
	listResp  []models.Movie
	listErr   error
	getResp   *models.Movie
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
	lastTitle   string
	lastYear    string
	lastID      int
}

func (m *mockWatchlist) List(ctx context.Context) ([]models.Movie, error) {
	return m.listResp, m.listErr
}
func (m *mockWatchlist) Get(ctx context.Context, id int) (*models.Movie, error) {
	m.lastID = id
	return m.getResp, m.getErr
}
func (m *mockWatchlist) Create(ctx context.Context, title, year string) (models.Movie, error) {
	m.createCalls++
	m.lastTitle, m.lastYear = title, year
	if m.createErr != nil {
		return models.Movie{}, m.createErr
	}
	return models.Movie{ID: 1, Title: title, Year: year}, nil
}
func (m *mockWatchlist) Update(ctx context.Context, id int, title, year string) error {
	m.updateCalls++
	m.lastID, m.lastTitle, m.lastYear = id, title, year
	return m.updateErr
}
func (m *mockWatchlist) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastID = id
	return m.deleteErr
}

type mockProfile struct {
	owner         *models.User
	ownerErr      error
	updateNameErr error

	updateNameCalls int
	lastNameID      int
	lastName        string
}

func (m *mockProfile) Owner(ctx context.Context) (*models.User, error) {
	return m.owner, m.ownerErr
}
func (m *mockProfile) UpdateName(ctx context.Context, id int, name string) error {
	m.updateNameCalls++
	m.lastNameID = id
	m.lastName = name
	return m.updateNameErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
