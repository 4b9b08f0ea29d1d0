package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flotagest/internal/application/usecase"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	apphttp "github.com/tu-usuario/flotagest/internal/interfaces/http"
)

// memAuditoriaRepo repositorio de auditoría en memoria.
type memAuditoriaRepo struct {
	registros []*entity.RegistroAuditoria
}

func (r *memAuditoriaRepo) Create(reg *entity.RegistroAuditoria) error {
	r.registros = append(r.registros, reg)
	return nil
}

func (r *memAuditoriaRepo) List(entidad string, from, to *time.Time, limit, offset int) ([]*entity.RegistroAuditoria, error) {
	return r.registros, nil
}

// buildAuditApp arma una app con auth + auditoría y rutas de prueba.
func buildAuditApp(repo *memAuditoriaRepo) *fiber.App {
	auditoriaUC := usecase.NewAuditoriaUseCase(repo)

	app := fiber.New()
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret), apphttp.AuditMiddleware(auditoriaUC))
	api.Get("/vehiculos", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"items": []string{}})
	})
	api.Post("/vehiculos", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": "v-1", "placa": "ABC-123"})
	})
	api.Post("/tanques/:id/recargas", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Params("id")})
	})
	api.Post("/productos", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"code": "CODIGO_EXISTS"})
	})
	return app
}

func auditRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuditMiddleware_RegistraMutacionExitosa(t *testing.T) {
	repo := &memAuditoriaRepo{}
	app := buildAuditApp(repo)

	resp := auditRequest(t, app, http.MethodPost, "/api/vehiculos")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, repo.registros, 1)
	reg := repo.registros[0]
	assert.Equal(t, testUserID, reg.UserID)
	assert.Equal(t, "vehiculos", reg.Entidad)
	assert.Equal(t, "POST /api/vehiculos", reg.Accion)
	assert.Contains(t, string(reg.Despues), "ABC-123",
		"el registro debe guardar el estado resultante de la mutación")
}

func TestAuditMiddleware_IgnoraLecturas(t *testing.T) {
	repo := &memAuditoriaRepo{}
	app := buildAuditApp(repo)

	resp := auditRequest(t, app, http.MethodGet, "/api/vehiculos")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Empty(t, repo.registros, "los GET no deben generar registros de auditoría")
}

func TestAuditMiddleware_IgnoraMutacionesFallidas(t *testing.T) {
	repo := &memAuditoriaRepo{}
	app := buildAuditApp(repo)

	resp := auditRequest(t, app, http.MethodPost, "/api/productos")
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	assert.Empty(t, repo.registros, "una mutación rechazada no debe auditarse")
}

func TestAuditMiddleware_ExtraeEntidadEIDDeLaRuta(t *testing.T) {
	repo := &memAuditoriaRepo{}
	app := buildAuditApp(repo)

	resp := auditRequest(t, app, http.MethodPost, "/api/tanques/t-99/recargas")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, repo.registros, 1)
	assert.Equal(t, "tanques", repo.registros[0].Entidad)
	assert.Equal(t, "t-99", repo.registros[0].EntidadID)
}
