package validate_test

import (
	"testing"

	"github.com/joseenriquez/lecturaviva/pkg/validate"
)

type checkoutAddress struct {
	NombreCompleto string `json:"nombre_completo" validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	Ciudad         string `json:"ciudad"          validate:"required"`
}

type checkoutItem struct {
	IDLibro string `json:"id_libro" validate:"required,objectid"`
	Titulo  string `json:"titulo"   validate:"required"`
}

type checkoutInput struct {
	IDUsuario string          `json:"id_usuario" validate:"required,email"`
	Direccion checkoutAddress `json:"direccion_envio"`
	Items     []checkoutItem  `json:"items" validate:"present"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		IDUsuario: "juan.perez@correo.cl",
		Direccion: checkoutAddress{
			NombreCompleto: "Juan Pérez",
			Email:          "juan.perez@correo.cl",
			Ciudad:         "Santiago",
		},
		Items: []checkoutItem{
			{IDLibro: "660000000000000000000001", Titulo: "Estudio en Escarlata"},
		},
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(checkoutInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["id_usuario"]; !ok {
		t.Error("expected id_usuario to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNestedStructErrorsKeyedByPath(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		IDUsuario: "juan.perez@correo.cl",
		Direccion: checkoutAddress{
			NombreCompleto: "Juan Pérez",
			Email:          "no-es-correo",
			// Ciudad missing
		},
	})
	if _, ok := errs["direccion_envio.email"]; !ok {
		t.Errorf("expected direccion_envio.email error, got: %v", errs)
	}
	if _, ok := errs["direccion_envio.ciudad"]; !ok {
		t.Errorf("expected direccion_envio.ciudad error, got: %v", errs)
	}
}

func TestSliceElementErrorsKeyedByIndex(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		IDUsuario: "juan.perez@correo.cl",
		Direccion: checkoutAddress{
			NombreCompleto: "Juan Pérez",
			Email:          "juan.perez@correo.cl",
			Ciudad:         "Santiago",
		},
		Items: []checkoutItem{
			{IDLibro: "660000000000000000000001", Titulo: "Estudio en Escarlata"},
			{IDLibro: "not-hex", Titulo: ""},
		},
	})
	if _, ok := errs["items.1.id_libro"]; !ok {
		t.Errorf("expected items.1.id_libro error, got: %v", errs)
	}
	if _, ok := errs["items.1.titulo"]; !ok {
		t.Errorf("expected items.1.titulo error, got: %v", errs)
	}
	if _, ok := errs["items.0.id_libro"]; ok {
		t.Errorf("did not expect an error for the valid element, got: %v", errs)
	}
}

func TestEmptyItemsAccepted(t *testing.T) {
	// No minimum-length constraint: an empty items sequence is valid.
	errs := validate.Struct(checkoutInput{
		IDUsuario: "juan.perez@correo.cl",
		Direccion: checkoutAddress{
			NombreCompleto: "Juan Pérez",
			Email:          "juan.perez@correo.cl",
			Ciudad:         "Santiago",
		},
		Items: []checkoutItem{},
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected empty items to pass, got: %v", errs)
	}
}

func TestNilItemsRejected(t *testing.T) {
	// `present` distinguishes a missing key (nil slice after decode) from an
	// explicit empty sequence: the former fails, the latter passes.
	errs := validate.Struct(checkoutInput{
		IDUsuario: "juan.perez@correo.cl",
		Direccion: checkoutAddress{
			NombreCompleto: "Juan Pérez",
			Email:          "juan.perez@correo.cl",
			Ciudad:         "Santiago",
		},
		Items: nil,
	})
	if _, ok := errs["items"]; !ok {
		t.Errorf("expected items to be required when nil, got: %v", errs)
	}
}

func TestObjectIDRule(t *testing.T) {
	type in struct {
		ID string `json:"id" validate:"required,objectid"`
	}
	valid := []string{"660000000000000000000001", "FFFFFFFFFFFFFFFFFFFFFFFF"}
	for _, v := range valid {
		if errs := validate.Struct(in{ID: v}); validate.HasErrors(errs) {
			t.Errorf("expected %q to pass, got: %v", v, errs)
		}
	}
	invalid := []string{"zz0000000000000000000001", "66000000000000000000001", "660000000000000000000001ff", ""}
	for _, v := range invalid {
		if errs := validate.Struct(in{ID: v}); !validate.HasErrors(errs) {
			t.Errorf("expected %q to fail", v)
		}
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Genero string `json:"genero" validate:"nullable,in=Novela Negra,Realismo Mágico,Infantil"`
	}
	if errs := validate.Struct(in{Genero: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Genero: "Novela Negra"}); validate.HasErrors(errs) {
		t.Errorf("expected listed value to pass: %v", errs)
	}
	if errs := validate.Struct(in{Genero: "Terror"}); !validate.HasErrors(errs) {
		t.Error("expected unlisted value to fail")
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Cantidad int `json:"cantidad" validate:"gte=1,lte=100"`
	}
	if errs := validate.Struct(in{Cantidad: 0}); !validate.HasErrors(errs) {
		t.Error("expected cantidad < 1 to fail")
	}
	if errs := validate.Struct(in{Cantidad: 3}); validate.HasErrors(errs) {
		t.Errorf("expected cantidad 3 to pass, got: %v", errs)
	}
}
