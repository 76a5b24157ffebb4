package activity

// Series fijas del collar para las tres mascotas de demostración. Los valores
// replican el histórico del dispositivo: Bella (1) con nivel alto, Dom (2)
// gato de interior con nivel bajo y Thor (3) con nivel moderado.

func bellaDaily() []Sample {
	return []Sample{
		{Hour: "00:00", Day: "Seg", Date: "29/05", Distance: 30, Steps: 60, Active: 8, Inactive: 52, Location: "casa"},
		{Hour: "01:00", Day: "Seg", Date: "29/05", Distance: 10, Steps: 20, Active: 2, Inactive: 58, Location: "casa"},
		{Hour: "02:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "03:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "04:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "05:00", Day: "Seg", Date: "29/05", Distance: 50, Steps: 120, Active: 10, Inactive: 50, Location: "casa"},
		{Hour: "06:00", Day: "Seg", Date: "29/05", Distance: 250, Steps: 550, Active: 25, Inactive: 35, Location: "quintal"},
		{Hour: "07:00", Day: "Seg", Date: "29/05", Distance: 1800, Steps: 3800, Active: 50, Inactive: 10, Location: "rua"},
		{Hour: "08:00", Day: "Seg", Date: "29/05", Distance: 450, Steps: 980, Active: 35, Inactive: 25, Location: "quintal"},
		{Hour: "09:00", Day: "Seg", Date: "29/05", Distance: 200, Steps: 450, Active: 22, Inactive: 38, Location: "casa"},
		{Hour: "10:00", Day: "Seg", Date: "29/05", Distance: 320, Steps: 680, Active: 30, Inactive: 30, Location: "quintal"},
		{Hour: "11:00", Day: "Seg", Date: "29/05", Distance: 380, Steps: 800, Active: 35, Inactive: 25, Location: "quintal"},
		{Hour: "12:00", Day: "Seg", Date: "29/05", Distance: 220, Steps: 480, Active: 25, Inactive: 35, Location: "casa"},
		{Hour: "13:00", Day: "Seg", Date: "29/05", Distance: 180, Steps: 380, Active: 20, Inactive: 40, Location: "casa"},
		{Hour: "14:00", Day: "Seg", Date: "29/05", Distance: 350, Steps: 750, Active: 35, Inactive: 25, Location: "quintal"},
		{Hour: "15:00", Day: "Seg", Date: "29/05", Distance: 280, Steps: 600, Active: 30, Inactive: 30, Location: "quintal"},
		{Hour: "16:00", Day: "Seg", Date: "29/05", Distance: 220, Steps: 480, Active: 25, Inactive: 35, Location: "casa"},
		{Hour: "17:00", Day: "Seg", Date: "29/05", Distance: 2000, Steps: 4200, Active: 55, Inactive: 5, Location: "rua"},
		{Hour: "18:00", Day: "Seg", Date: "29/05", Distance: 480, Steps: 1000, Active: 40, Inactive: 20, Location: "quintal"},
		{Hour: "19:00", Day: "Seg", Date: "29/05", Distance: 320, Steps: 680, Active: 30, Inactive: 30, Location: "casa"},
		{Hour: "20:00", Day: "Seg", Date: "29/05", Distance: 250, Steps: 520, Active: 25, Inactive: 35, Location: "casa"},
		{Hour: "21:00", Day: "Seg", Date: "29/05", Distance: 120, Steps: 250, Active: 15, Inactive: 45, Location: "casa"},
		{Hour: "22:00", Day: "Seg", Date: "29/05", Distance: 50, Steps: 100, Active: 8, Inactive: 52, Location: "casa"},
		{Hour: "23:00", Day: "Seg", Date: "29/05", Distance: 20, Steps: 40, Active: 5, Inactive: 55, Location: "casa"},
	}
}

func thorDaily() []Sample {
	return []Sample{
		{Hour: "00:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "01:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "02:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "03:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "04:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "05:00", Day: "Seg", Date: "29/05", Distance: 10, Steps: 20, Active: 2, Inactive: 58, Location: "casa"},
		{Hour: "06:00", Day: "Seg", Date: "29/05", Distance: 120, Steps: 250, Active: 15, Inactive: 45, Location: "quintal"},
		{Hour: "07:00", Day: "Seg", Date: "29/05", Distance: 950, Steps: 2000, Active: 35, Inactive: 25, Location: "rua"},
		{Hour: "08:00", Day: "Seg", Date: "29/05", Distance: 180, Steps: 380, Active: 20, Inactive: 40, Location: "quintal"},
		{Hour: "09:00", Day: "Seg", Date: "29/05", Distance: 120, Steps: 250, Active: 15, Inactive: 45, Location: "casa"},
		{Hour: "10:00", Day: "Seg", Date: "29/05", Distance: 150, Steps: 320, Active: 18, Inactive: 42, Location: "casa"},
		{Hour: "11:00", Day: "Seg", Date: "29/05", Distance: 180, Steps: 380, Active: 20, Inactive: 40, Location: "quintal"},
		{Hour: "12:00", Day: "Seg", Date: "29/05", Distance: 140, Steps: 300, Active: 15, Inactive: 45, Location: "casa"},
		{Hour: "13:00", Day: "Seg", Date: "29/05", Distance: 90, Steps: 190, Active: 10, Inactive: 50, Location: "casa"},
		{Hour: "14:00", Day: "Seg", Date: "29/05", Distance: 160, Steps: 340, Active: 18, Inactive: 42, Location: "quintal"},
		{Hour: "15:00", Day: "Seg", Date: "29/05", Distance: 120, Steps: 250, Active: 15, Inactive: 45, Location: "casa"},
		{Hour: "16:00", Day: "Seg", Date: "29/05", Distance: 100, Steps: 210, Active: 12, Inactive: 48, Location: "casa"},
		{Hour: "17:00", Day: "Seg", Date: "29/05", Distance: 900, Steps: 1900, Active: 35, Inactive: 25, Location: "rua"},
		{Hour: "18:00", Day: "Seg", Date: "29/05", Distance: 220, Steps: 460, Active: 22, Inactive: 38, Location: "quintal"},
		{Hour: "19:00", Day: "Seg", Date: "29/05", Distance: 150, Steps: 320, Active: 18, Inactive: 42, Location: "casa"},
		{Hour: "20:00", Day: "Seg", Date: "29/05", Distance: 90, Steps: 190, Active: 12, Inactive: 48, Location: "casa"},
		{Hour: "21:00", Day: "Seg", Date: "29/05", Distance: 40, Steps: 80, Active: 5, Inactive: 55, Location: "casa"},
		{Hour: "22:00", Day: "Seg", Date: "29/05", Distance: 10, Steps: 20, Active: 2, Inactive: 58, Location: "casa"},
		{Hour: "23:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
	}
}

func domDaily() []Sample {
	return []Sample{
		{Hour: "00:00", Day: "Seg", Date: "29/05", Distance: 60, Steps: 130, Active: 8, Inactive: 52, Location: "casa"},
		{Hour: "01:00", Day: "Seg", Date: "29/05", Distance: 70, Steps: 150, Active: 10, Inactive: 50, Location: "casa"},
		{Hour: "02:00", Day: "Seg", Date: "29/05", Distance: 80, Steps: 170, Active: 11, Inactive: 49, Location: "casa"},
		{Hour: "03:00", Day: "Seg", Date: "29/05", Distance: 50, Steps: 110, Active: 6, Inactive: 54, Location: "casa"},
		{Hour: "04:00", Day: "Seg", Date: "29/05", Distance: 30, Steps: 70, Active: 4, Inactive: 56, Location: "casa"},
		{Hour: "05:00", Day: "Seg", Date: "29/05", Distance: 20, Steps: 40, Active: 3, Inactive: 57, Location: "casa"},
		{Hour: "06:00", Day: "Seg", Date: "29/05", Distance: 10, Steps: 20, Active: 2, Inactive: 58, Location: "casa"},
		{Hour: "07:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "08:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "09:00", Day: "Seg", Date: "29/05", Distance: 0, Steps: 0, Active: 0, Inactive: 60, Location: "casa"},
		{Hour: "10:00", Day: "Seg", Date: "29/05", Distance: 5, Steps: 10, Active: 1, Inactive: 59, Location: "casa"},
		{Hour: "11:00", Day: "Seg", Date: "29/05", Distance: 10, Steps: 20, Active: 2, Inactive: 58, Location: "casa"},
		{Hour: "12:00", Day: "Seg", Date: "29/05", Distance: 20, Steps: 40, Active: 3, Inactive: 57, Location: "casa"},
		{Hour: "13:00", Day: "Seg", Date: "29/05", Distance: 25, Steps: 50, Active: 3, Inactive: 57, Location: "casa"},
		{Hour: "14:00", Day: "Seg", Date: "29/05", Distance: 15, Steps: 30, Active: 2, Inactive: 58, Location: "casa"},
		{Hour: "15:00", Day: "Seg", Date: "29/05", Distance: 10, Steps: 20, Active: 2, Inactive: 58, Location: "casa"},
		{Hour: "16:00", Day: "Seg", Date: "29/05", Distance: 5, Steps: 10, Active: 1, Inactive: 59, Location: "casa"},
		{Hour: "17:00", Day: "Seg", Date: "29/05", Distance: 10, Steps: 20, Active: 2, Inactive: 58, Location: "casa"},
		{Hour: "18:00", Day: "Seg", Date: "29/05", Distance: 20, Steps: 40, Active: 3, Inactive: 57, Location: "casa"},
		{Hour: "19:00", Day: "Seg", Date: "29/05", Distance: 40, Steps: 90, Active: 5, Inactive: 55, Location: "casa"},
		{Hour: "20:00", Day: "Seg", Date: "29/05", Distance: 55, Steps: 120, Active: 7, Inactive: 53, Location: "casa"},
		{Hour: "21:00", Day: "Seg", Date: "29/05", Distance: 65, Steps: 140, Active: 9, Inactive: 51, Location: "casa"},
		{Hour: "22:00", Day: "Seg", Date: "29/05", Distance: 70, Steps: 150, Active: 10, Inactive: 50, Location: "casa"},
		{Hour: "23:00", Day: "Seg", Date: "29/05", Distance: 65, Steps: 140, Active: 9, Inactive: 51, Location: "casa"},
	}
}

func bellaWeekly() []Sample {
	return []Sample{
		{Hour: "09:00", Day: "Seg", Date: "29/05", Distance: 3500, Steps: 7400, Active: 220, Inactive: 260, Location: "casa+rua"},
		{Hour: "09:00", Day: "Ter", Date: "30/05", Distance: 3800, Steps: 8000, Active: 230, Inactive: 250, Location: "casa+rua"},
		{Hour: "09:00", Day: "Qua", Date: "31/05", Distance: 3600, Steps: 7600, Active: 225, Inactive: 255, Location: "casa+rua"},
		{Hour: "09:00", Day: "Qui", Date: "01/06", Distance: 3700, Steps: 7800, Active: 228, Inactive: 252, Location: "casa+rua"},
		{Hour: "09:00", Day: "Sex", Date: "02/06", Distance: 3900, Steps: 8200, Active: 235, Inactive: 245, Location: "casa+rua"},
		{Hour: "09:00", Day: "Sab", Date: "03/06", Distance: 5000, Steps: 10500, Active: 280, Inactive: 160, Location: "parque"},
		{Hour: "09:00", Day: "Dom", Date: "04/06", Distance: 5200, Steps: 11000, Active: 290, Inactive: 150, Location: "parque"},
	}
}

func thorWeekly() []Sample {
	return []Sample{
		{Hour: "09:00", Day: "Seg", Date: "29/05", Distance: 2300, Steps: 4800, Active: 150, Inactive: 330, Location: "casa+rua"},
		{Hour: "09:00", Day: "Ter", Date: "30/05", Distance: 2400, Steps: 5000, Active: 155, Inactive: 325, Location: "casa+rua"},
		{Hour: "09:00", Day: "Qua", Date: "31/05", Distance: 2250, Steps: 4700, Active: 145, Inactive: 335, Location: "casa+rua"},
		{Hour: "09:00", Day: "Qui", Date: "01/06", Distance: 2200, Steps: 4600, Active: 140, Inactive: 340, Location: "casa+rua"},
		{Hour: "09:00", Day: "Sex", Date: "02/06", Distance: 2500, Steps: 5200, Active: 160, Inactive: 320, Location: "casa+rua"},
		{Hour: "09:00", Day: "Sab", Date: "03/06", Distance: 3300, Steps: 6800, Active: 210, Inactive: 270, Location: "parque"},
		{Hour: "09:00", Day: "Dom", Date: "04/06", Distance: 3500, Steps: 7200, Active: 220, Inactive: 260, Location: "parque"},
	}
}

func domWeekly() []Sample {
	return []Sample{
		{Hour: "09:00", Day: "Seg", Date: "29/05", Distance: 700, Steps: 1500, Active: 80, Inactive: 400, Location: "casa"},
		{Hour: "09:00", Day: "Ter", Date: "30/05", Distance: 750, Steps: 1600, Active: 85, Inactive: 395, Location: "casa"},
		{Hour: "09:00", Day: "Qua", Date: "31/05", Distance: 720, Steps: 1550, Active: 82, Inactive: 398, Location: "casa"},
		{Hour: "09:00", Day: "Qui", Date: "01/06", Distance: 680, Steps: 1450, Active: 75, Inactive: 405, Location: "casa"},
		{Hour: "09:00", Day: "Sex", Date: "02/06", Distance: 800, Steps: 1700, Active: 90, Inactive: 390, Location: "casa"},
		{Hour: "09:00", Day: "Sab", Date: "03/06", Distance: 770, Steps: 1650, Active: 88, Inactive: 392, Location: "casa"},
		{Hour: "09:00", Day: "Dom", Date: "04/06", Distance: 750, Steps: 1600, Active: 85, Inactive: 395, Location: "casa"},
	}
}

func bellaMonthly() []Sample {
	return []Sample{
		{Hour: "12:00", Day: "Sem 1", Date: "01/05", Distance: 27000, Steps: 57000, Active: 1650, Inactive: 1650, Location: "misto"},
		{Hour: "12:00", Day: "Sem 2", Date: "08/05", Distance: 28500, Steps: 60000, Active: 1700, Inactive: 1600, Location: "misto"},
		{Hour: "12:00", Day: "Sem 3", Date: "15/05", Distance: 27800, Steps: 58000, Active: 1680, Inactive: 1620, Location: "misto"},
		{Hour: "12:00", Day: "Sem 4", Date: "22/05", Distance: 29000, Steps: 61000, Active: 1750, Inactive: 1550, Location: "misto"},
	}
}

func thorMonthly() []Sample {
	return []Sample{
		{Hour: "12:00", Day: "Sem 1", Date: "01/05", Distance: 16000, Steps: 33000, Active: 1050, Inactive: 2250, Location: "misto"},
		{Hour: "12:00", Day: "Sem 2", Date: "08/05", Distance: 17500, Steps: 36000, Active: 1100, Inactive: 2200, Location: "misto"},
		{Hour: "12:00", Day: "Sem 3", Date: "15/05", Distance: 16800, Steps: 35000, Active: 1070, Inactive: 2230, Location: "misto"},
		{Hour: "12:00", Day: "Sem 4", Date: "22/05", Distance: 18000, Steps: 37500, Active: 1120, Inactive: 2180, Location: "misto"},
	}
}

func domMonthly() []Sample {
	return []Sample{
		{Hour: "12:00", Day: "Sem 1", Date: "01/05", Distance: 5000, Steps: 10500, Active: 580, Inactive: 2720, Location: "casa"},
		{Hour: "12:00", Day: "Sem 2", Date: "08/05", Distance: 5300, Steps: 11000, Active: 600, Inactive: 2700, Location: "casa"},
		{Hour: "12:00", Day: "Sem 3", Date: "15/05", Distance: 5100, Steps: 10700, Active: 590, Inactive: 2710, Location: "casa"},
		{Hour: "12:00", Day: "Sem 4", Date: "22/05", Distance: 5400, Steps: 11200, Active: 610, Inactive: 2690, Location: "casa"},
	}
}

// SamplesFor devuelve la serie del collar para la mascota y el rango. Las
// mascotas registradas después de las tres de demostración reciben una serie
// sintética determinista (mismo id, misma serie).
func SamplesFor(petID int64, rng TimeRange) []Sample {
	switch petID {
	case 1:
		switch rng {
		case RangeWeek:
			return bellaWeekly()
		case RangeMonth:
			return bellaMonthly()
		default:
			return bellaDaily()
		}
	case 2:
		switch rng {
		case RangeWeek:
			return domWeekly()
		case RangeMonth:
			return domMonthly()
		default:
			return domDaily()
		}
	case 3:
		switch rng {
		case RangeWeek:
			return thorWeekly()
		case RangeMonth:
			return thorMonthly()
		default:
			return thorDaily()
		}
	default:
		return syntheticSamples(petID, rng)
	}
}
