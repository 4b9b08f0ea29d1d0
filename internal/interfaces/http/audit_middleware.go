package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/usecase"
)

// AuditMiddleware deja traza de toda mutación exitosa (POST/PUT/DELETE) hecha
// por un usuario autenticado. Usar después de AuthMiddleware. Un fallo al
// registrar no afecta la respuesta al cliente.
func AuditMiddleware(auditoria *usecase.AuditoriaUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if c.Method() == fiber.MethodGet {
			return nil
		}
		if status := c.Response().StatusCode(); status < 200 || status >= 300 {
			return nil
		}
		// El cuerpo de la respuesta es el estado resultante de la mutación.
		var despues any
		if body := c.Response().Body(); json.Valid(body) {
			despues = json.RawMessage(append([]byte(nil), body...))
		}
		_ = auditoria.Registrar(usecase.RegistroOpts{
			UserID:    GetUserID(c),
			Entidad:   entidadDesdeRuta(c.Path()),
			EntidadID: c.Params("id"),
			Accion:    c.Method() + " " + c.Route().Path,
			Despues:   despues,
		})
		return nil
	}
}

// entidadDesdeRuta extrae el primer segmento después de /api como nombre de
// entidad: /api/vehiculos/123 → vehiculos.
func entidadDesdeRuta(path string) string {
	path = strings.TrimPrefix(path, "/api/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
