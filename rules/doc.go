// Package rules provides reusable check builders for formkit validators.
//
// Each builder returns a Check that inspects one value and reports a Failure
// carrying both a default English message and a translation key with
// placeholder values. Checks compose into a formkit.ValidateFunc with All,
// or with Localized to render messages through a localizer such as
// translate.Translator.
//
//	fn := rules.All(rules.Required(), rules.MinLen(3))
//	field, err := formkit.Attach(session, fn, setter)
//
// Checks are plain value predicates with no hidden state; building a check is
// cheap and the result is safe to share across fields and goroutines.
package rules
