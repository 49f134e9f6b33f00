package entity

// Page é o resultado canônico de listagem. O backend responde ora array puro,
// ora {data, meta}, ora {dados}; a borda REST converte tudo para cá.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// SinglePage embrulha uma resposta sem metadados de paginação.
func SinglePage[T any](items []T) Page[T] {
	return Page[T]{
		Items:      items,
		Total:      len(items),
		Page:       1,
		Limit:      len(items),
		TotalPages: 1,
	}
}
