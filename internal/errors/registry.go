package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Field configuration (F001-F019)
	// ============================================

	"F001": {
		Category: CategoryField,
		Message:  "Field slug is empty",
		Detail:   "Every field except static markup needs a slug. It becomes the element id and name and keys the field in application state.",
	},
	"F002": {
		Category: CategoryField,
		Message:  "Duplicate field slug",
		Detail:   "Two fields in the same form share a slug, so their ids collide and one field's events will update the other.",
	},
	"F003": {
		Category: CategoryField,
		Message:  "Duplicate option slug",
		Detail:   "Option slugs must be unique within a field. Selection is matched by exact slug, so duplicates are indistinguishable.",
	},
	"F004": {
		Category: CategoryField,
		Message:  "Field has no options",
		Detail:   "Radio, select, checkbox group and autocomplete fields render one control per option and need at least one.",
	},
	"F005": {
		Category: CategoryField,
		Message:  "Field has no value reader",
		Detail:   "Without a reader the field always renders empty and never leaves the pristine state.",
	},

	// ============================================
	// Definition files (F020-F039)
	// ============================================

	"F020": {
		Category: CategorySchema,
		Message:  "Definition file is empty",
		Detail:   "The definition file contains no fields.",
	},
	"F021": {
		Category: CategorySchema,
		Message:  "Invalid definition syntax",
		Detail:   "The definition could not be parsed as YAML or JSON.",
	},
	"F022": {
		Category: CategorySchema,
		Message:  "Unknown field kind",
		Detail:   "Supported kinds are text, password, textarea, radio, checkbox, checkboxes, select, datepicker, autocomplete and static.",
	},
	"F023": {
		Category: CategorySchema,
		Message:  "Invalid validation rule",
		Detail:   "A rule must set exactly one of notEmpty, pattern, minLength or equals, and patterns must compile.",
	},
	"F024": {
		Category: CategorySchema,
		Message:  "Unknown field in equals rule",
		Detail:   "An equals rule compares against another field's slug, which must exist in the same definition.",
	},

	// ============================================
	// Configuration (F040-F049)
	// ============================================

	"F040": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "formkit.json could not be read or parsed.",
	},
	"F041": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or missing.",
	},

	// ============================================
	// Preview and publish (F060-F079)
	// ============================================

	"F060": {
		Category: CategoryPreview,
		Message:  "Invalid share token",
		Detail:   "The share token is malformed or its signature does not match this server's secret.",
	},
	"F061": {
		Category: CategoryPreview,
		Message:  "Unknown event target",
		Detail:   "The browser referenced an element that is not part of the current render. The page may be stale.",
	},
	"F070": {
		Category: CategoryPublish,
		Message:  "Snapshot upload failed",
		Detail:   "The rendered snapshot could not be written to the bucket.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
