package logging

// Standardized field names for structured logging.
const (
	FieldFile        = "file_path"
	FieldDocument    = "document"
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldStatus      = "status"
	FieldError       = "error"
	FieldDuration    = "duration_ms"
	FieldCount       = "count"
	FieldRow         = "row"
	FieldReason      = "reason"
	FieldHeader      = "header"
	FieldDate        = "date"
	FieldScore       = "score"
	FieldRiskLevel   = "risk_level"
	FieldWorkers     = "workers"
	FieldAnalysisID  = "analysis_id"
	FieldOutputFile  = "output_file"
	FieldInputFile   = "input_file"
	FieldDescription = "description"
)
