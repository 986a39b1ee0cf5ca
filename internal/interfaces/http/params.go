package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// decodificarParam des-escapa un parámetro de ruta. Los nombres de parte
// llegan en árabe y viajan percent-encoded en la URL.
func decodificarParam(c *fiber.Ctx, nombre string) (string, error) {
	return url.PathUnescape(c.Params(nombre))
}
