// Package services holds the business logic that sits between controllers
// and repositories. The only non-trivial piece is order identity stamping.
package services

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/joseenriquez/lecturaviva/app/models"
)

// EstadoPendiente is the status every freshly created order gets, regardless
// of anything the caller supplied.
const EstadoPendiente = "Pendiente"

// fechaLayout renders the creation timestamp as ISO-8601 with microseconds.
// The trailing "Z" is appended literally; the clock is read in UTC so the
// suffix is truthful.
const fechaLayout = "2006-01-02T15:04:05.000000"

// PedidoService stamps the server-generated identity fields onto new orders.
// The clock and the random picker are injectable for tests.
type PedidoService struct {
	now  func() time.Time
	pick func(lo, hi int) int
}

func NewPedidoService() *PedidoService {
	return &PedidoService{
		now:  time.Now,
		pick: func(lo, hi int) int { return rand.IntN(hi-lo+1) + lo },
	}
}

// NewPedido builds the persistable order document from the validated create
// payload, stamping id_pedido, fecha_pedido, and estado.
//
// id_pedido is "LV-" + date + "-" + a uniform random 3-digit number in
// [100, 999]. No uniqueness check is performed against existing orders;
// collisions are possible and accepted.
func (s *PedidoService) NewPedido(base models.PedidoBase) models.Pedido {
	now := s.now().UTC()

	return models.Pedido{
		PedidoBase:  base,
		IDPedido:    fmt.Sprintf("LV-%s-%d", now.Format("20060102"), s.pick(100, 999)),
		FechaPedido: now.Format(fechaLayout) + "Z",
		Estado:      EstadoPendiente,
	}
}
