// Package i18n loads localized validation message catalogs.
//
// A catalog maps a language code to a set of message templates keyed by rule
// name. Catalog files are YAML or JSON, chosen by file extension, and may nest
// keys; nested keys are flattened with dots:
//
//	en:
//	  validation:
//	    max-length: "{label} must be at most {param} characters"
//	    email: "{label} is not an e-mail address"
//	de:
//	  validation:
//	    max-length: "{label} darf höchstens {param} Zeichen lang sein"
//
// Catalog.Messages returns the templates under the "validation." prefix for a
// language, resolving regional tags to their base language (de-AT → de) with
// golang.org/x/text/language and falling back to the catalog default:
//
//	cat, err := i18n.LoadFile(ctx, "messages.yaml")
//	if err != nil {
//		return err
//	}
//	v.OverrideErrorMessages(cat.Messages("de-AT"))
//
// YAML parsing uses gopkg.in/yaml.v3 and JSON parsing uses
// github.com/goccy/go-json.
package i18n
