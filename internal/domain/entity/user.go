package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCajero   = "cajero"
	RoleVendedor = "vendedor"
)

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleCajero, RoleVendedor:
		return true
	}
	return false
}

// User es el registro del directorio en usuarios/{uid}.
// UID es el identificador emitido por el proveedor de identidad y enlaza ambos almacenes.
type User struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	Nombre        string `json:"nombre"`
	Telefono      string `json:"telefono"`
	Rol           string `json:"rol"`
	FechaRegistro Fecha  `json:"fecha_registro"`
	Activo        bool   `json:"activo"`
}

// UserChanges actualización parcial del perfil; nil = sin cambio.
type UserChanges struct {
	Nombre   *string
	Telefono *string
	Rol      *string
}

// Empty indica que no hay ningún campo a modificar.
func (c UserChanges) Empty() bool {
	return c.Nombre == nil && c.Telefono == nil && c.Rol == nil
}

// Fields devuelve solo los campos presentes, con sus nombres en el almacén.
func (c UserChanges) Fields() map[string]any {
	fields := make(map[string]any, 3)
	if c.Nombre != nil {
		fields["nombre"] = *c.Nombre
	}
	if c.Telefono != nil {
		fields["telefono"] = *c.Telefono
	}
	if c.Rol != nil {
		fields["rol"] = *c.Rol
	}
	return fields
}

// Apply aplica los cambios sobre u.
func (c UserChanges) Apply(u *User) {
	if c.Nombre != nil {
		u.Nombre = *c.Nombre
	}
	if c.Telefono != nil {
		u.Telefono = *c.Telefono
	}
	if c.Rol != nil {
		u.Rol = *c.Rol
	}
}

// NewAccount datos para crear la cuenta en el proveedor de identidad.
type NewAccount struct {
	Email       string
	Password    string
	DisplayName string
}

// Credential resultado efímero de verificar un bearer token.
type Credential struct {
	UID   string
	Email string
}
