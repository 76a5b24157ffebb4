package notifications

// Merge combina las notificaciones recién derivadas con las persistidas.
//
// Reglas:
//   - Las derivadas frescas mandan: bucket, prioridad y textos reflejan la
//     fecha actual. Si existía una persistida con el mismo ID, solo se
//     conserva su flag Read.
//   - Las personalizadas persistidas (sin EventID) se conservan siempre.
//   - Las derivadas persistidas cuyo ID ya no se regenera quedan fuera: su
//     evento se completó, se borró o salió de la ventana.
func Merge(fresh, persisted []Notification) []Notification {
	readByID := make(map[string]bool, len(persisted))
	for _, p := range persisted {
		if p.Read {
			readByID[p.ID] = true
		}
	}

	out := make([]Notification, 0, len(fresh)+len(persisted))
	for _, f := range fresh {
		if readByID[f.ID] {
			f.Read = true
		}
		out = append(out, f)
	}

	for _, p := range persisted {
		if p.IsCustom() {
			out = append(out, p)
		}
	}

	sortByTimeDesc(out)
	return out
}
