package dto

// Envelope respuesta uniforme de la API remota. Todos los campos vienen siempre;
// Metadata es null en endpoints de un solo registro.
type Envelope[T any] struct {
	Success    bool      `json:"success"`
	StatusCode string    `json:"statusCode"`
	Path       string    `json:"path"`
	Timestamp  string    `json:"timestamp"`
	Message    string    `json:"message"`
	Data       T         `json:"data"`
	Metadata   *Metadata `json:"metadata"`
}

// Metadata paginación de los listados.
type Metadata struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
