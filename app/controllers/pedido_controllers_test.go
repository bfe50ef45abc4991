package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joseenriquez/lecturaviva/app/controllers"
	"github.com/joseenriquez/lecturaviva/app/models"
	"github.com/joseenriquez/lecturaviva/app/services"
)

// fakePedidoStore keeps the inserted document in memory and echoes it back
// on FindByID, mimicking the insert → re-fetch round trip.
type fakePedidoStore struct {
	inserted  models.Pedido
	insertErr error
	findErr   error
}

func (f *fakePedidoStore) Create(_ context.Context, p models.Pedido) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.inserted = p
	return primitive.NewObjectID(), nil
}

func (f *fakePedidoStore) FindByID(_ context.Context, id primitive.ObjectID) (models.Pedido, error) {
	if f.findErr != nil {
		return models.Pedido{}, f.findErr
	}
	p := f.inserted
	p.ID = id
	return p, nil
}

const validPedidoBody = `{
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
	"items": [
		{"id_libro": "660000000000000000000001", "titulo": "Estudio en Escarlata", "precio_unitario": 10990, "cantidad": 1}
	]
}`

func postPedido(t *testing.T, c *controllers.PedidoController, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/pedidos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.Create(rec, req)
	return rec
}

func TestCreatePedidoEndToEnd(t *testing.T) {
	store := &fakePedidoStore{}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	rec := postPedido(t, c, validPedidoBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Pedido
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	// Submitted fields echoed unchanged.
	assert.Equal(t, "juan.perez@correo.cl", got.IDUsuario)
	assert.Equal(t, 18980, got.Subtotal)
	assert.Equal(t, 2000, got.CostoEnvio)
	assert.Equal(t, 20980, got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "660000000000000000000001", got.Items[0].IDLibro)
	assert.Equal(t, "Estudio en Escarlata", got.Items[0].Titulo)
	assert.Equal(t, 10990, got.Items[0].PrecioUnitario)
	assert.Equal(t, 1, got.Items[0].Cantidad)

	// Generated fields present.
	assert.False(t, got.ID.IsZero())
	assert.Regexp(t, `^LV-\d{8}-\d{3}$`, got.IDPedido)
	assert.Equal(t, time.Now().UTC().Format("20060102"), got.IDPedido[3:11])
	assert.Equal(t, "Pendiente", got.Estado)

	ts, err := time.Parse("2006-01-02T15:04:05.000000Z", got.FechaPedido)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestCreatePedidoOverridesCallerEstado(t *testing.T) {
	store := &fakePedidoStore{}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	body := strings.Replace(validPedidoBody, `"subtotal": 18980,`, `"subtotal": 18980, "estado": "Entregado",`, 1)
	rec := postPedido(t, c, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Pedido
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Pendiente", got.Estado)
}

func TestCreatePedidoMissingAddressFieldRejected(t *testing.T) {
	store := &fakePedidoStore{}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	body := strings.Replace(validPedidoBody, `"ciudad": "Santiago",`, "", 1)
	rec := postPedido(t, c, body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Detail string            `json:"detail"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "direccion_envio.ciudad")
	assert.True(t, store.inserted.IDPedido == "", "rejected payload must not reach the store")
}

func TestCreatePedidoMalformedItemRejected(t *testing.T) {
	store := &fakePedidoStore{}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	body := strings.Replace(validPedidoBody, "660000000000000000000001", "not-a-document-id", 1)
	rec := postPedido(t, c, body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "items.0.id_libro")
}

func TestCreatePedidoEmptyItemsAccepted(t *testing.T) {
	store := &fakePedidoStore{}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	start := strings.Index(validPedidoBody, `"items"`)
	body := validPedidoBody[:start] + `"items": []}`
	rec := postPedido(t, c, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestCreatePedidoMissingItemsRejected(t *testing.T) {
	store := &fakePedidoStore{}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	start := strings.Index(validPedidoBody, `"items"`)
	body := strings.TrimSuffix(strings.TrimSpace(validPedidoBody[:start]), ",") + "\n}"
	rec := postPedido(t, c, body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "items")
	assert.True(t, store.inserted.IDPedido == "", "rejected payload must not reach the store")
}

func TestCreatePedidoNullItemsRejected(t *testing.T) {
	store := &fakePedidoStore{}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	start := strings.Index(validPedidoBody, `"items"`)
	rec := postPedido(t, c, validPedidoBody[:start]+`"items": null}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "items")
}

func TestCreatePedidoInvalidJSON(t *testing.T) {
	store := &fakePedidoStore{}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	rec := postPedido(t, c, `{"id_usuario": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "detail")
}

func TestCreatePedidoStoreFailure(t *testing.T) {
	store := &fakePedidoStore{insertErr: errors.New("connection reset")}
	c := controllers.NewPedidoController(store, services.NewPedidoService())

	rec := postPedido(t, c, validPedidoBody)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// The underlying error message is interpolated into the detail text.
	assert.Contains(t, rec.Body.String(), "Error al crear el pedido: connection reset")
}
