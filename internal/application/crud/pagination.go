package crud

// Pagination estado de paginación: Page >= 1, PageSize > 0, TotalItems lo informa el servidor.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
}

// DefaultPageSize tamaño de página inicial.
const DefaultPageSize = 10

// TotalPages = ceil(TotalItems / PageSize).
func (p Pagination) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}

// GoTo cambia de página sin acotar: una página fuera de rango es un estado válido (vacío).
func (p Pagination) GoTo(page int) Pagination {
	p.Page = page
	return p.normalize()
}

// Next avanza una página solo si no es la última.
func (p Pagination) Next() Pagination {
	if p.Page < p.TotalPages() {
		p.Page++
	}
	return p
}

// Previous retrocede una página solo si no es la primera.
func (p Pagination) Previous() Pagination {
	if p.Page > 1 {
		p.Page--
	}
	return p
}

// WithPageSize cambia el tamaño de página y vuelve a la primera.
func (p Pagination) WithPageSize(size int) Pagination {
	p.PageSize = size
	p.Page = 1
	return p.normalize()
}

func (p Pagination) normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.TotalItems < 0 {
		p.TotalItems = 0
	}
	return p
}
