package documents

import "time"

// Seed devuelve los documentos iniciales de demostración.
func Seed() []PetDocument {
	return []PetDocument{
		{
			ID:         "doc-1",
			Name:       "Resultado Exame de Sangue",
			PetID:      1,
			FileType:   "pdf",
			FileURL:    "/documents/exam-blood.pdf",
			FileSize:   1250000,
			UploadDate: time.Date(2025, 5, 15, 14, 30, 0, 0, time.UTC),
			Category:   CategoryExams,
			Notes:      "Exame de sangue completo realizado na Clínica PetVet",
			IsFavorite: true,
		},
		{
			ID:         "doc-2",
			Name:       "Carteira de Vacinação",
			PetID:      1,
			FileType:   "pdf",
			FileURL:    "/documents/vaccination-card.pdf",
			FileSize:   850000,
			UploadDate: time.Date(2025, 4, 10, 10, 15, 0, 0, time.UTC),
			Category:   CategoryVaccines,
			Notes:      "Inclui todas as vacinas até 2025",
			IsFavorite: true,
		},
		{
			ID:         "doc-3",
			Name:       "Receita Medicamento",
			PetID:      2,
			FileType:   "jpg",
			FileURL:    "/documents/prescription.jpg",
			FileSize:   450000,
			UploadDate: time.Date(2025, 5, 28, 16, 45, 0, 0, time.UTC),
			Category:   CategoryPrescriptions,
			Notes:      "Receita para antibiótico após procedimento dental",
		},
		{
			ID:         "doc-4",
			Name:       "Raio-X Tórax",
			PetID:      3,
			FileType:   "png",
			FileURL:    "/documents/xray-chest.png",
			FileSize:   2800000,
			UploadDate: time.Date(2025, 5, 2, 9, 20, 0, 0, time.UTC),
			Category:   CategoryExams,
			Notes:      "Raio-X realizado após suspeita de problema respiratório",
			IsFavorite: true,
		},
	}
}
