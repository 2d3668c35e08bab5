package logging

// Field names shared by every component so log lines can be filtered the same way
// across the parser, categorizer and reporter.
const (
	FieldFile       = "file_path"
	FieldRow        = "row"
	FieldField      = "field"
	FieldRule       = "rule"
	FieldCategory   = "category"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldFiles      = "files"
	FieldRunID      = "run_id"
	FieldEncoding   = "encoding"
	FieldOutputFile = "output_file"
	FieldComponent  = "component"
)
