package pets

// Seed devuelve las mascotas iniciales de demostración.
func Seed() []Pet {
	return []Pet{
		{
			ID:    1,
			Name:  "Bella",
			Image: "/bela.png",
			Info: Info{
				Species:  "Cachorro",
				Weight:   "15kg",
				Age:      "5 anos",
				Breed:    "SRD",
				CollarID: "52386",
			},
		},
		{
			ID:    2,
			Name:  "Dom",
			Image: "/dom.jpeg",
			Info: Info{
				Species:  "Gato",
				Weight:   "8kg",
				Age:      "7 anos",
				Breed:    "SRD",
				CollarID: "54486",
			},
		},
		{
			ID:    3,
			Name:  "Thor",
			Image: "/thor.jpg",
			Info: Info{
				Species:  "Cachorro",
				Weight:   "30kg",
				Age:      "9 anos",
				Breed:    "Golden Retriever",
				CollarID: "512386",
			},
		},
	}
}
