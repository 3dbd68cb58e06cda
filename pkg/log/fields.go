package log

const (
	FieldService = "service"
	FieldCommand = "command"

	// Identifier
	FieldID          = "id"
	FieldDataCentre  = "data_centre"
	FieldEnvironment = "environment"
	FieldTypeID      = "type_id"

	// Generation
	FieldCount  = "count"
	FieldFormat = "format"
	FieldReason = "reason"
)
