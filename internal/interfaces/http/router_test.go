package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/door-to-door/internal/application/apptest"
	"github.com/jhoicas/door-to-door/internal/application/auth"
	"github.com/jhoicas/door-to-door/internal/application/dto"
	"github.com/jhoicas/door-to-door/internal/application/usecase"
	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/door-to-door/internal/interfaces/http"
	"github.com/jhoicas/door-to-door/pkg/logger"
	"github.com/jhoicas/door-to-door/pkg/password"
)

const adminPassword = "admin-password-1"

// buildAPI monta el router completo sobre repositorios en memoria con un administrador sembrado.
func buildAPI(t *testing.T) (*fiber.App, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	users := apptest.Users{S: store}
	hasher := password.NewHasher(bcrypt.MinCost)

	salt, hash, err := hasher.Hash(adminPassword)
	require.NoError(t, err)
	_, err = users.Register(context.Background(), &entity.User{
		FirstName: "Root", LastName: "Admin", EmailAddress: "admin@co.com",
		PasswordHash: hash, PasswordSalt: salt, RoleID: entity.RoleAdministrator,
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(users, hasher, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:    usecase.NewUserUseCase(users),
		AdminUC:   usecase.NewAdminUseCase(users, hasher),
		ManagerUC: usecase.NewManagerUseCase(users, apptest.Houses{S: store}, apptest.Sales{S: store}, hasher, pdf.NewMarotoPDFGenerator()),
		JWTSecret: testJWTSecret,
		AppName:   "door-to-door-test",
	})
	return app, store
}

// call lanza la petición y decodifica el JSON de respuesta en out (si no es nil).
func call(t *testing.T, app *fiber.App, method, path, token string, body any, out any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func login(t *testing.T, app *fiber.App, email, pass string) dto.LoginResponse {
	t.Helper()
	var out dto.LoginResponse
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: pass}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return out
}

func newUserReq(first, email string) dto.RegisterUserRequest {
	return dto.RegisterUserRequest{FirstName: first, LastName: "Test", Email: email, Password: "temporal-123"}
}

func houseBody(salespersonID int) dto.CreateHouseRequest {
	return dto.CreateHouseRequest{
		Street: "1 Main St", City: "Springfield", District: "North",
		ZipCode: "12345", Country: "US", SalespersonID: salespersonID,
	}
}

func TestRouter_Health(t *testing.T) {
	app, _ := buildAPI(t)
	var body map[string]string
	resp := call(t, app, http.MethodGet, "/health", "", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_Login_CredencialesInvalidas(t *testing.T) {
	app, _ := buildAPI(t)
	var e dto.ErrorResponse
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@co.com", Password: "mal"}, &e)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", e.Code)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "no-es-email", Password: "x"}, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", e.Code)
}

func TestRouter_FlujoCompleto(t *testing.T) {
	app, _ := buildAPI(t)

	admin := login(t, app, "ADMIN@co.com", adminPassword)
	assert.Equal(t, "Administrator", admin.User.Role)

	// Alta de managers por el administrador.
	var m1, m2 dto.UserResponse
	resp := call(t, app, http.MethodPost, "/api/admin/managers", admin.Token, newUserReq("Mia", "M1@co.com"), &m1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "m1@co.com", m1.Email)
	assert.True(t, m1.MustUpdatePassword)
	resp = call(t, app, http.MethodPost, "/api/admin/managers", admin.Token, newUserReq("Max", "m2@co.com"), &m2)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var e dto.ErrorResponse
	resp = call(t, app, http.MethodPost, "/api/admin/managers", admin.Token, newUserReq("Otra", "m1@CO.com"), &e)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_EXISTS", e.Code)

	var managers []dto.UserResponse
	call(t, app, http.MethodGet, "/api/admin/managers", admin.Token, nil, &managers)
	assert.Len(t, managers, 2)

	// El manager registra a su vendedor.
	mia := login(t, app, "m1@co.com", "temporal-123")
	assert.True(t, mia.MustUpdatePassword)
	var s1 dto.UserResponse
	resp = call(t, app, http.MethodPost, "/api/manager/salespeople", mia.Token, newUserReq("Sam", "s1@co.com"), &s1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Salesperson", s1.Role)

	// Otro manager no puede asignarle casas.
	max := login(t, app, "m2@co.com", "temporal-123")
	resp = call(t, app, http.MethodPost, "/api/manager/houses", max.Token, houseBody(s1.ID), &e)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "NOT_YOUR_SALESPERSON", e.Code)

	var house dto.HouseResponse
	resp = call(t, app, http.MethodPost, "/api/manager/houses", mia.Token, houseBody(s1.ID), &house)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "north", house.District)

	var houses []dto.HouseResponse
	call(t, app, http.MethodGet, "/api/manager/houses", mia.Token, nil, &houses)
	require.Len(t, houses, 1)
	assert.Equal(t, "Sam Test", houses[0].SalespersonName)

	call(t, app, http.MethodGet, "/api/manager/houses", max.Token, nil, &houses)
	assert.Empty(t, houses)

	// El vendedor no entra a rutas de manager ni de administrador.
	sam := login(t, app, "s1@co.com", "temporal-123")
	resp = call(t, app, http.MethodGet, "/api/manager/houses", sam.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/admin/managers", mia.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Cambio de contraseña obligatorio.
	resp = call(t, app, http.MethodPost, "/api/auth/password", sam.Token, dto.ChangePasswordRequest{Password: "definitiva-456"}, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	sam = login(t, app, "s1@co.com", "definitiva-456")
	assert.False(t, sam.MustUpdatePassword)

	// Reset forzado por el administrador.
	resp = call(t, app, http.MethodPost, "/api/admin/users/"+strconv.Itoa(s1.ID)+"/reset-password", admin.Token, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	var me dto.UserResponse
	call(t, app, http.MethodGet, "/api/auth/me", sam.Token, nil, &me)
	assert.True(t, me.MustUpdatePassword)

	resp = call(t, app, http.MethodPost, "/api/admin/users/999/reset-password", admin.Token, nil, &e)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "OPERATION_FAILED", e.Code)

	resp = call(t, app, http.MethodPost, "/api/admin/users/abc/reset-password", admin.Token, nil, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", e.Code)
}

func TestRouter_Reportes(t *testing.T) {
	app, store := buildAPI(t)
	admin := login(t, app, "admin@co.com", adminPassword)

	var m1 dto.UserResponse
	call(t, app, http.MethodPost, "/api/admin/managers", admin.Token, newUserReq("Mia", "m1@co.com"), &m1)
	mia := login(t, app, "m1@co.com", "temporal-123")
	var s1 dto.UserResponse
	call(t, app, http.MethodPost, "/api/manager/salespeople", mia.Token, newUserReq("Sam", "s1@co.com"), &s1)
	store.AddSale(entity.SalesTransaction{SalespersonID: s1.ID})
	store.AddSale(entity.SalesTransaction{SalespersonID: s1.ID})

	var report dto.SalesReportResponse
	resp := call(t, app, http.MethodGet, "/api/manager/reports/sales", mia.Token, nil, &report)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, report.TotalSales)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "Sam", report.Rows[0].FirstName)

	var txs []dto.SalesTransactionResponse
	call(t, app, http.MethodGet, "/api/manager/transactions", mia.Token, nil, &txs)
	assert.Len(t, txs, 2)

	resp = call(t, app, http.MethodGet, "/api/manager/reports/sales.pdf", mia.Token, nil, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ventas_")
	b, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestRouter_FalloDelAlmacen_Retorna500SinDetalle(t *testing.T) {
	app, store := buildAPI(t)
	admin := login(t, app, "admin@co.com", adminPassword)

	store.Err = errors.New("connection refused")
	var e dto.ErrorResponse
	resp := call(t, app, http.MethodGet, "/api/admin/managers", admin.Token, nil, &e)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "STORAGE", e.Code)
	assert.NotContains(t, e.Message, "connection refused")
}
