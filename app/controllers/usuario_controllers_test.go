package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joseenriquez/lecturaviva/app/controllers"
	"github.com/joseenriquez/lecturaviva/app/models"
)

type fakeUsuarioStore struct {
	docs []models.Usuario
}

func (f *fakeUsuarioStore) Create(_ context.Context, u models.Usuario) (primitive.ObjectID, error) {
	u.ID = primitive.NewObjectID()
	f.docs = append(f.docs, u)
	return u.ID, nil
}

func (f *fakeUsuarioStore) FindByID(_ context.Context, id primitive.ObjectID) (models.Usuario, error) {
	for _, u := range f.docs {
		if u.ID == id {
			return u, nil
		}
	}
	return models.Usuario{}, errNotFound
}

func (f *fakeUsuarioStore) All(_ context.Context) ([]models.Usuario, error) {
	return append([]models.Usuario{}, f.docs...), nil
}

var errNotFound = errors.New("document not found")

func TestCreateUsuario(t *testing.T) {
	store := &fakeUsuarioStore{}
	c := controllers.NewUsuarioController(store)

	body := `{"name": "Juan Pérez", "email": "juan.perez@correo.cl", "password": "secreto"}`
	req := httptest.NewRequest(http.MethodPost, "/usuarios/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Usuario
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Juan Pérez", got.Name)
	assert.Equal(t, "juan.perez@correo.cl", got.Email)
	assert.False(t, got.ID.IsZero(), "response carries the assigned identifier")
}

func TestCreateUsuarioInvalidEmail(t *testing.T) {
	store := &fakeUsuarioStore{}
	c := controllers.NewUsuarioController(store)

	body := `{"name": "Juan", "email": "no-es-correo", "password": "secreto"}`
	req := httptest.NewRequest(http.MethodPost, "/usuarios/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, store.docs, "invalid payload must not be persisted")
}

func TestListUsuarios(t *testing.T) {
	store := &fakeUsuarioStore{docs: []models.Usuario{
		{ID: primitive.NewObjectID(), Name: "Ana", Email: "ana@correo.cl", Password: "x"},
		{ID: primitive.NewObjectID(), Name: "Luis", Email: "luis@correo.cl", Password: "y"},
	}}
	c := controllers.NewUsuarioController(store)

	req := httptest.NewRequest(http.MethodGet, "/usuarios/", nil)
	rec := httptest.NewRecorder()
	c.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Usuario
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestListUsuariosEmpty(t *testing.T) {
	c := controllers.NewUsuarioController(&fakeUsuarioStore{})

	req := httptest.NewRequest(http.MethodGet, "/usuarios/", nil)
	rec := httptest.NewRecorder()
	c.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
