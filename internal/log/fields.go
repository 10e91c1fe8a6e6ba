package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldEndpoint   = "endpoint"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldEntity     = "entity"
	FieldEntityID   = "entity_id"
	FieldCount      = "count"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentAPI      = "api"
	ComponentFormat   = "format"
	ComponentSnapshot = "snapshot"
	ComponentWorker   = "worker"
)

// Operations defines standard operation names
const (
	OpSnapshot = "snapshot"
	OpShutdown = "shutdown"
)

// EntityRecurringBill tags schedule warnings with their entity family.
const EntityRecurringBill = "recurring_bill"
