package pets

// Info agrupa los datos de perfil de la mascota. Todos son texto libre
// porque el formulario de alta no valida formato (peso "15kg", idade "5 anos").
type Info struct {
	Species  string `json:"species"`
	Weight   string `json:"weight"`
	Age      string `json:"age"`
	Breed    string `json:"breed"`
	CollarID string `json:"collarId"`
}

// Pet representa una mascota del usuario. El ID es estable por mascota
// (timestamp de creación en milisegundos); las mascotas nunca se borran.
type Pet struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Info  Info   `json:"info"`
}
