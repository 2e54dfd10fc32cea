package models

// EmergencyView — публичная проекция данных пользователя, доступная
// по экстренному токену без аутентификации.
//
// Поверхность сознательно минимизирована: свободнотекстовые заметки
// аллергий и препаратов сюда не попадают никогда — они могут содержать
// произвольно чувствительные детали.
type EmergencyView struct {
	FullName  *string
	Phone     *string
	BloodType string

	Allergies   []EmergencyAllergy
	Medications []EmergencyMedication
	Contacts    []EmergencyContact
}

// EmergencyAllergy — аллергия в публичной проекции: только название и тяжесть.
type EmergencyAllergy struct {
	Name     string
	Severity string
}

// EmergencyMedication — препарат в публичной проекции: без заметок.
type EmergencyMedication struct {
	Name      string
	Dosage    string
	Frequency string
}
