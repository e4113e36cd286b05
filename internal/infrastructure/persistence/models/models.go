package models

// All returns every persistence model, in dependency order, for GORM
// auto-migration in development.
func All() []interface{} {
	return []interface{}{
		&RoomModel{},
		&SpotCheckModel{},
		&AlertModel{},
		&AlertHistoryModel{},
		&StaffMemberModel{},
		&CertificationModel{},
		&DocumentModel{},
		&IncidentReportModel{},
		&MedicationLogModel{},
		&DailyChecklistModel{},
	}
}
