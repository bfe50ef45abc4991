package routes

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joseenriquez/lecturaviva/app/controllers"
	"github.com/joseenriquez/lecturaviva/app/repositories"
	"github.com/joseenriquez/lecturaviva/app/services"
	"github.com/joseenriquez/lecturaviva/pkg/router"
)

// RegisterAPI wires every endpoint against the shared database handle.
func RegisterAPI(r *router.Router, db *mongo.Database) {
	usuarioController := controllers.NewUsuarioController(repositories.NewUsuarioRepository(db))
	productoController := controllers.NewProductoController(repositories.NewProductoRepository(db))
	libroController := controllers.NewLibroController(repositories.NewLibroRepository(db))
	pedidoController := controllers.NewPedidoController(
		repositories.NewPedidoRepository(db),
		services.NewPedidoService(),
	)

	r.Post("/usuarios/", "usuarios.create", usuarioController.Create)
	r.Get("/usuarios/", "usuarios.list", usuarioController.List)
	r.Post("/productos/", "productos.create", productoController.Create)
	r.Get("/productos/", "productos.list", productoController.List)
	r.Get("/libros", "libros.list", libroController.List)
	r.Post("/pedidos", "pedidos.create", pedidoController.Create)

	r.Get("/health", "health", controllers.Health)
}
