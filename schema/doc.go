// Package schema provides YAML-declared rule documents and the matching
// formkit adapter. It is the reference implementation of formkit's opaque
// schema contract: the session never looks inside a document, only the
// adapter does.
//
//	doc, err := schema.Parse([]byte("required: true\nmin_len: 3"))
//	session, err := formkit.NewWithAdapter(schema.Adapter())
//	field, err := formkit.AttachSchema[string](session, doc, setter)
//
// ParseSet decodes a whole form at once, mapping field names to documents:
//
//	username:
//	  required: true
//	  pattern: "^[a-z0-9_]+$"
//	plan:
//	  one_of: [starter, pro, enterprise]
package schema
