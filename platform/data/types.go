package data

// Types names the kind of an evaluation result.
type Types string

const (
	BOOL   Types = "bool"
	INT    Types = "int"
	FLOAT  Types = "float"
	STRING Types = "string"
	RANGE  Types = "range"
	LIST   Types = "list"
	NONE   Types = "none"
)
