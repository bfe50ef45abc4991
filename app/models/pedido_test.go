package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joseenriquez/lecturaviva/app/models"
)

func TestPedidoSerializesIDAsHexString(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("660000000000000000000005")
	require.NoError(t, err)

	p := models.Pedido{
		ID: id,
		PedidoBase: models.PedidoBase{
			IDUsuario: "juan.perez@correo.cl",
			Total:     20980,
		},
		IDPedido:    "LV-20260829-412",
		FechaPedido: "2026-08-29T10:30:00.000000Z",
		Estado:      "Pendiente",
	}

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &wire))

	// The storage key is `_id`; the wire key is plain `id`, as a hex string.
	assert.Equal(t, "660000000000000000000005", wire["id"])
	assert.NotContains(t, wire, "_id")
	assert.Equal(t, "Pendiente", wire["estado"])
}

func TestObjectIDHexRoundTrip(t *testing.T) {
	// encode(decode(x)) == x for every valid stored identifier.
	hexes := []string{
		"660000000000000000000001",
		"000000000000000000000000",
		"ffffffffffffffffffffffff",
	}
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		require.NoError(t, err)
		assert.Equal(t, h, id.Hex())
	}
}

func TestMalformedHexFailsDecoding(t *testing.T) {
	malformed := []string{
		"not-an-id",
		"66000000000000000000000",   // 23 chars
		"66000000000000000000000100", // 26 chars
		"zz0000000000000000000001",
	}
	for _, h := range malformed {
		_, err := primitive.ObjectIDFromHex(h)
		assert.Error(t, err, "expected %q to be rejected", h)
	}
}

func TestPedidoUnmarshalAcceptsPlainIDName(t *testing.T) {
	raw := `{
		"id": "660000000000000000000005",
		"id_usuario": "juan.perez@correo.cl",
		"subtotal": 18980,
		"costo_envio": 2000,
		"total": 20980,
		"direccion_envio": {
			"nombre_completo": "Juan Pérez",
			"email": "juan.perez@correo.cl",
			"direccion": "Av. Siempre Viva 742, Santiago",
			"ciudad": "Santiago",
			"region": "Metropolitana"
		},
		"items": [],
		"id_pedido": "LV-20260829-412",
		"fecha_pedido": "2026-08-29T10:30:00.000000Z",
		"estado": "Pendiente"
	}`

	var p models.Pedido
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "660000000000000000000005", p.ID.Hex())
	assert.Equal(t, "LV-20260829-412", p.IDPedido)
	assert.NotNil(t, p.Items)
	assert.Len(t, p.Items, 0)

	// And back out: the empty items sequence survives as [].
	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"items":[]`)
}

func TestPedidoBaseIgnoresCallerEstado(t *testing.T) {
	// The create shape has no estado field; a supplied value is dropped at
	// decode time, before stamping ever runs.
	raw := `{"id_usuario": "juan.perez@correo.cl", "estado": "Entregado", "items": []}`

	var base models.PedidoBase
	require.NoError(t, json.Unmarshal([]byte(raw), &base))

	out, err := json.Marshal(base)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Entregado")
}
