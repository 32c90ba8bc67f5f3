// Package ruleset describes field checks as data and applies them to a
// validator.Validator.
//
// A rule set document lists fields in check order. Every step is a verb
// followed by a rule expression:
//
//	messages:
//	  not-empty: "{label} cannot be blank"
//	fields:
//	  - name: email
//	    label: Email
//	    rules:
//	      - filter trim
//	      - filter lower
//	      - is not-empty
//	      - is email
//	  - name: tags
//	    rules:
//	      - is-all in go,rust,zig
//
// Supported verbs are is, is-all, is-any, filter, filter-map and fail.
// Documents are read from YAML or JSON, chosen by file extension:
//
//	set, err := ruleset.LoadFile("signup.yaml")
//	if err != nil {
//	    return err
//	}
//	v := set.Validate(form)
//	if err := v.Err(); err != nil {
//	    return err
//	}
package ruleset
