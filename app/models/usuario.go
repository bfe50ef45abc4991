package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Usuario is the read shape of a user document: the create fields plus the
// store-assigned identifier, exposed on the wire as a hex `id` string.
//
// Email uniqueness is not enforced anywhere. The password is stored and
// echoed as received, a known defect kept for wire compatibility.
type Usuario struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"password"`
}

// UsuarioCreate is the subset of fields a client may supply.
type UsuarioCreate struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Document converts the create shape into a persistable document.
// The identifier is left zero so the store assigns it on insert.
func (c UsuarioCreate) Document() Usuario {
	return Usuario{
		Name:     c.Name,
		Email:    c.Email,
		Password: c.Password,
	}
}
