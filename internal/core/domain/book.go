package domain

// Author is a book author as listed by the upstream catalog.
type Author struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// Book mirrors the upstream catalog record. The exemplar counters are owned by
// the backend; exemplares_disponiveis never exceeds total_exemplares there and
// this side does not re-derive either.
type Book struct {
	ID                    int      `json:"id"`
	ISBN                  string   `json:"isbn"`
	Titulo                string   `json:"titulo"`
	Editora               string   `json:"editora"`
	Edicao                string   `json:"edicao"`
	Categoria             string   `json:"categoria"`
	TotalExemplares       int      `json:"total_exemplares"`
	ExemplaresDisponiveis int      `json:"exemplares_disponiveis"`
	Autores               []Author `json:"autores"`
	Exemplares            []Copy   `json:"exemplares,omitempty"`
}

// AuthorNames returns the author display names, used by the multi-valued
// filter field.
func (b Book) AuthorNames() []string {
	names := make([]string, 0, len(b.Autores))
	for _, a := range b.Autores {
		names = append(names, a.Nome)
	}
	return names
}

// Copy is one physical exemplar of a book. Availability is implied by which
// upstream endpoint returned it (exemplares-disponiveis vs -indisponiveis).
type Copy struct {
	Codigo string `json:"codigo"`
}
