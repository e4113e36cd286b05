package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyFacilityID = "facility_id"
	ContextKeyActorName  = "actor_name"
	ContextKeyUserRole   = "user_role"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableRooms           = "rooms"
	TableRatioSpotChecks = "ratio_spot_checks"
	TableAlerts          = "alerts"
	TableAlertHistory    = "alert_history"
	TableStaffMembers    = "staff_members"
	TableCertifications  = "certifications"
	TableDocuments       = "documents"
	TableIncidentReports = "incident_reports"
	TableMedicationLogs  = "medication_logs"
	TableDailyChecklists = "daily_checklists"

	// Spot-check policy: checks due per day before the missing-check alert fires
	SpotChecksDuePerDay = 2

	// check_method_other is truncated to this length before storage
	CheckMethodOtherMaxLen = 200

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
