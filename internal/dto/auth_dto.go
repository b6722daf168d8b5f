package dto

type LoginRequest struct {
	Correo     string `json:"correo"     validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	User        UsuarioResponse `json:"user"`
}

type RegistrarUsuarioRequest struct {
	Nombre     string  `json:"nombre"     validate:"required"`
	Apellidos  string  `json:"apellidos"`
	Correo     string  `json:"correo"     validate:"required,email"`
	Contrasena string  `json:"contrasena" validate:"required,min=6"`
	Telefono   *string `json:"telefono"`
}

type ActualizarUsuarioRequest struct {
	Nombre     string  `json:"nombre"`
	Apellidos  string  `json:"apellidos"`
	Telefono   *string `json:"telefono"`
	Tipo       string  `json:"tipo"       validate:"omitempty,oneof=Administrador Usuario"`
	Estado     string  `json:"estado"     validate:"omitempty,oneof=Activo Inactivo"`
	Contrasena string  `json:"contrasena" validate:"omitempty,min=6"`
}

type UsuarioResponse struct {
	ID        uint    `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellidos string  `json:"apellidos"`
	Correo    string  `json:"correo"`
	Telefono  *string `json:"telefono"`
	Tipo      string  `json:"tipo"`
	Estado    string  `json:"estado"`
}
