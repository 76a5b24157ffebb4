package activity

// Series de salud fijas para las tres mascotas de demostración. Thor carga un
// episodio febril (pico de 40.5 °C a las 14h) que alimenta el chequeo de
// anomalías.

func bellaHealthDaily() []HealthSample {
	return []HealthSample{
		{Hour: "00:00", Day: "Seg", Date: "29/05", Temperature: 37.8, HeartRate: 72, Activity: 10},
		{Hour: "01:00", Day: "Seg", Date: "29/05", Temperature: 37.7, HeartRate: 68, Activity: 5},
		{Hour: "02:00", Day: "Seg", Date: "29/05", Temperature: 37.6, HeartRate: 65, Activity: 3},
		{Hour: "03:00", Day: "Seg", Date: "29/05", Temperature: 37.5, HeartRate: 64, Activity: 2},
		{Hour: "04:00", Day: "Seg", Date: "29/05", Temperature: 37.6, HeartRate: 65, Activity: 3},
		{Hour: "05:00", Day: "Seg", Date: "29/05", Temperature: 37.7, HeartRate: 70, Activity: 8},
		{Hour: "06:00", Day: "Seg", Date: "29/05", Temperature: 37.9, HeartRate: 75, Activity: 15},
		{Hour: "07:00", Day: "Seg", Date: "29/05", Temperature: 38.0, HeartRate: 85, Activity: 35},
		{Hour: "08:00", Day: "Seg", Date: "29/05", Temperature: 38.2, HeartRate: 95, Activity: 60},
		{Hour: "09:00", Day: "Seg", Date: "29/05", Temperature: 38.3, HeartRate: 100, Activity: 85},
		{Hour: "10:00", Day: "Seg", Date: "29/05", Temperature: 38.4, HeartRate: 105, Activity: 90},
		{Hour: "11:00", Day: "Seg", Date: "29/05", Temperature: 38.5, HeartRate: 110, Activity: 95},
		{Hour: "12:00", Day: "Seg", Date: "29/05", Temperature: 38.6, HeartRate: 100, Activity: 85},
		{Hour: "13:00", Day: "Seg", Date: "29/05", Temperature: 38.5, HeartRate: 95, Activity: 75},
		{Hour: "14:00", Day: "Seg", Date: "29/05", Temperature: 38.4, HeartRate: 90, Activity: 65},
		{Hour: "15:00", Day: "Seg", Date: "29/05", Temperature: 38.3, HeartRate: 85, Activity: 60},
		{Hour: "16:00", Day: "Seg", Date: "29/05", Temperature: 38.4, HeartRate: 95, Activity: 80},
		{Hour: "17:00", Day: "Seg", Date: "29/05", Temperature: 38.5, HeartRate: 100, Activity: 85},
		{Hour: "18:00", Day: "Seg", Date: "29/05", Temperature: 38.4, HeartRate: 95, Activity: 75},
		{Hour: "19:00", Day: "Seg", Date: "29/05", Temperature: 38.3, HeartRate: 90, Activity: 60},
		{Hour: "20:00", Day: "Seg", Date: "29/05", Temperature: 38.1, HeartRate: 85, Activity: 45},
		{Hour: "21:00", Day: "Seg", Date: "29/05", Temperature: 38.0, HeartRate: 80, Activity: 30},
		{Hour: "22:00", Day: "Seg", Date: "29/05", Temperature: 37.9, HeartRate: 75, Activity: 20},
		{Hour: "23:00", Day: "Seg", Date: "29/05", Temperature: 37.8, HeartRate: 70, Activity: 15},
	}
}

func domHealthDaily() []HealthSample {
	return []HealthSample{
		{Hour: "00:00", Day: "Seg", Date: "29/05", Temperature: 38.3, HeartRate: 130, Activity: 20},
		{Hour: "01:00", Day: "Seg", Date: "29/05", Temperature: 38.2, HeartRate: 125, Activity: 15},
		{Hour: "02:00", Day: "Seg", Date: "29/05", Temperature: 38.1, HeartRate: 120, Activity: 10},
		{Hour: "03:00", Day: "Seg", Date: "29/05", Temperature: 38.0, HeartRate: 118, Activity: 5},
		{Hour: "04:00", Day: "Seg", Date: "29/05", Temperature: 38.1, HeartRate: 120, Activity: 8},
		{Hour: "05:00", Day: "Seg", Date: "29/05", Temperature: 38.2, HeartRate: 125, Activity: 15},
		{Hour: "06:00", Day: "Seg", Date: "29/05", Temperature: 38.3, HeartRate: 135, Activity: 25},
		{Hour: "07:00", Day: "Seg", Date: "29/05", Temperature: 38.4, HeartRate: 140, Activity: 40},
		{Hour: "08:00", Day: "Seg", Date: "29/05", Temperature: 38.5, HeartRate: 145, Activity: 65},
		{Hour: "09:00", Day: "Seg", Date: "29/05", Temperature: 38.6, HeartRate: 150, Activity: 80},
		{Hour: "10:00", Day: "Seg", Date: "29/05", Temperature: 38.7, HeartRate: 155, Activity: 95},
		{Hour: "11:00", Day: "Seg", Date: "29/05", Temperature: 38.8, HeartRate: 160, Activity: 100},
		{Hour: "12:00", Day: "Seg", Date: "29/05", Temperature: 38.7, HeartRate: 155, Activity: 85},
		{Hour: "13:00", Day: "Seg", Date: "29/05", Temperature: 38.6, HeartRate: 150, Activity: 70},
		{Hour: "14:00", Day: "Seg", Date: "29/05", Temperature: 38.5, HeartRate: 145, Activity: 60},
		{Hour: "15:00", Day: "Seg", Date: "29/05", Temperature: 38.6, HeartRate: 150, Activity: 75},
		{Hour: "16:00", Day: "Seg", Date: "29/05", Temperature: 38.7, HeartRate: 155, Activity: 90},
		{Hour: "17:00", Day: "Seg", Date: "29/05", Temperature: 38.8, HeartRate: 160, Activity: 95},
		{Hour: "18:00", Day: "Seg", Date: "29/05", Temperature: 38.7, HeartRate: 155, Activity: 85},
		{Hour: "19:00", Day: "Seg", Date: "29/05", Temperature: 38.6, HeartRate: 150, Activity: 75},
		{Hour: "20:00", Day: "Seg", Date: "29/05", Temperature: 38.5, HeartRate: 145, Activity: 65},
		{Hour: "21:00", Day: "Seg", Date: "29/05", Temperature: 38.4, HeartRate: 140, Activity: 50},
		{Hour: "22:00", Day: "Seg", Date: "29/05", Temperature: 38.3, HeartRate: 135, Activity: 35},
		{Hour: "23:00", Day: "Seg", Date: "29/05", Temperature: 38.2, HeartRate: 130, Activity: 25},
	}
}

func thorHealthDaily() []HealthSample {
	return []HealthSample{
		{Hour: "00:00", Day: "Seg", Date: "29/05", Temperature: 38.0, HeartRate: 75, Activity: 12},
		{Hour: "01:00", Day: "Seg", Date: "29/05", Temperature: 37.9, HeartRate: 72, Activity: 8},
		{Hour: "02:00", Day: "Seg", Date: "29/05", Temperature: 37.8, HeartRate: 70, Activity: 5},
		{Hour: "03:00", Day: "Seg", Date: "29/05", Temperature: 37.9, HeartRate: 72, Activity: 6},
		{Hour: "04:00", Day: "Seg", Date: "29/05", Temperature: 38.0, HeartRate: 75, Activity: 8},
		{Hour: "05:00", Day: "Seg", Date: "29/05", Temperature: 38.1, HeartRate: 80, Activity: 10},
		{Hour: "06:00", Day: "Seg", Date: "29/05", Temperature: 38.3, HeartRate: 85, Activity: 20},
		{Hour: "07:00", Day: "Seg", Date: "29/05", Temperature: 38.5, HeartRate: 90, Activity: 35},
		{Hour: "08:00", Day: "Seg", Date: "29/05", Temperature: 38.7, HeartRate: 95, Activity: 50},
		{Hour: "09:00", Day: "Seg", Date: "29/05", Temperature: 38.9, HeartRate: 105, Activity: 70},
		{Hour: "10:00", Day: "Seg", Date: "29/05", Temperature: 39.2, HeartRate: 115, Activity: 80},
		{Hour: "11:00", Day: "Seg", Date: "29/05", Temperature: 39.5, HeartRate: 125, Activity: 85},
		{Hour: "12:00", Day: "Seg", Date: "29/05", Temperature: 39.8, HeartRate: 135, Activity: 60},
		{Hour: "13:00", Day: "Seg", Date: "29/05", Temperature: 40.1, HeartRate: 145, Activity: 40},
		{Hour: "14:00", Day: "Seg", Date: "29/05", Temperature: 40.5, HeartRate: 160, Activity: 30},
		{Hour: "15:00", Day: "Seg", Date: "29/05", Temperature: 40.3, HeartRate: 155, Activity: 25},
		{Hour: "16:00", Day: "Seg", Date: "29/05", Temperature: 40.0, HeartRate: 145, Activity: 30},
		{Hour: "17:00", Day: "Seg", Date: "29/05", Temperature: 39.7, HeartRate: 140, Activity: 35},
		{Hour: "18:00", Day: "Seg", Date: "29/05", Temperature: 39.4, HeartRate: 130, Activity: 40},
		{Hour: "19:00", Day: "Seg", Date: "29/05", Temperature: 39.1, HeartRate: 120, Activity: 45},
		{Hour: "20:00", Day: "Seg", Date: "29/05", Temperature: 38.8, HeartRate: 110, Activity: 50},
		{Hour: "21:00", Day: "Seg", Date: "29/05", Temperature: 38.5, HeartRate: 100, Activity: 40},
		{Hour: "22:00", Day: "Seg", Date: "29/05", Temperature: 38.3, HeartRate: 90, Activity: 30},
		{Hour: "23:00", Day: "Seg", Date: "29/05", Temperature: 38.1, HeartRate: 85, Activity: 20},
	}
}

func bellaHealthWeekly() []HealthSample {
	return []HealthSample{
		{Day: "Seg", Date: "23/05", Temperature: 38.2, HeartRate: 85, Activity: 70},
		{Day: "Ter", Date: "24/05", Temperature: 38.1, HeartRate: 82, Activity: 75},
		{Day: "Qua", Date: "25/05", Temperature: 38.3, HeartRate: 88, Activity: 80},
		{Day: "Qui", Date: "26/05", Temperature: 38.2, HeartRate: 85, Activity: 85},
		{Day: "Sex", Date: "27/05", Temperature: 38.0, HeartRate: 80, Activity: 65},
		{Day: "Sab", Date: "28/05", Temperature: 38.1, HeartRate: 82, Activity: 90},
		{Day: "Dom", Date: "29/05", Temperature: 38.2, HeartRate: 85, Activity: 60},
	}
}

func domHealthWeekly() []HealthSample {
	return []HealthSample{
		{Day: "Seg", Date: "23/05", Temperature: 38.5, HeartRate: 140, Activity: 75},
		{Day: "Ter", Date: "24/05", Temperature: 38.4, HeartRate: 135, Activity: 80},
		{Day: "Qua", Date: "25/05", Temperature: 38.5, HeartRate: 145, Activity: 90},
		{Day: "Qui", Date: "26/05", Temperature: 38.6, HeartRate: 150, Activity: 85},
		{Day: "Sex", Date: "27/05", Temperature: 38.5, HeartRate: 145, Activity: 75},
		{Day: "Sab", Date: "28/05", Temperature: 38.4, HeartRate: 140, Activity: 95},
		{Day: "Dom", Date: "29/05", Temperature: 38.5, HeartRate: 145, Activity: 80},
	}
}

func thorHealthWeekly() []HealthSample {
	return []HealthSample{
		{Day: "Seg", Date: "23/05", Temperature: 38.3, HeartRate: 90, Activity: 65},
		{Day: "Ter", Date: "24/05", Temperature: 38.2, HeartRate: 85, Activity: 70},
		{Day: "Qua", Date: "25/05", Temperature: 38.4, HeartRate: 95, Activity: 75},
		{Day: "Qui", Date: "26/05", Temperature: 40.2, HeartRate: 145, Activity: 35},
		{Day: "Sex", Date: "27/05", Temperature: 39.5, HeartRate: 120, Activity: 45},
		{Day: "Sab", Date: "28/05", Temperature: 38.7, HeartRate: 100, Activity: 55},
		{Day: "Dom", Date: "29/05", Temperature: 38.3, HeartRate: 90, Activity: 65},
	}
}

func bellaHealthMonthly() []HealthSample {
	return []HealthSample{
		{Date: "29/04", Temperature: 38.1, HeartRate: 82, Activity: 75},
		{Date: "07/05", Temperature: 38.2, HeartRate: 85, Activity: 80},
		{Date: "14/05", Temperature: 38.0, HeartRate: 80, Activity: 70},
		{Date: "21/05", Temperature: 38.1, HeartRate: 82, Activity: 75},
		{Date: "29/05", Temperature: 38.2, HeartRate: 85, Activity: 80},
	}
}

func domHealthMonthly() []HealthSample {
	return []HealthSample{
		{Date: "29/04", Temperature: 38.4, HeartRate: 140, Activity: 80},
		{Date: "07/05", Temperature: 38.5, HeartRate: 145, Activity: 85},
		{Date: "14/05", Temperature: 38.6, HeartRate: 150, Activity: 90},
		{Date: "21/05", Temperature: 38.5, HeartRate: 145, Activity: 85},
		{Date: "29/05", Temperature: 38.4, HeartRate: 140, Activity: 80},
	}
}

func thorHealthMonthly() []HealthSample {
	return []HealthSample{
		{Date: "29/04", Temperature: 38.2, HeartRate: 85, Activity: 70},
		{Date: "07/05", Temperature: 38.3, HeartRate: 90, Activity: 75},
		{Date: "14/05", Temperature: 39.8, HeartRate: 135, Activity: 45},
		{Date: "21/05", Temperature: 38.5, HeartRate: 100, Activity: 60},
		{Date: "29/05", Temperature: 38.2, HeartRate: 85, Activity: 70},
	}
}
