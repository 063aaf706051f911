package translate

// DefaultCatalog covers the translation keys emitted by package rules in
// English. Use it as the fallback catalog and register other languages on
// top of it.
func DefaultCatalog() Catalog {
	return Catalog{
		"validation.required":   "field is required",
		"validation.min_length": "must be at least {{min}} characters long",
		"validation.max_length": "must be at most {{max}} characters long",
		"validation.pattern":    "must be a valid {{description}}",
		"validation.email":      "must be a valid email address",
		"validation.min":        "must be at least {{min}}",
		"validation.max":        "must be at most {{max}}",
		"validation.in_list":    "must be one of: {{allowed_values}}",
	}
}
