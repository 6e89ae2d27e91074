// Package schema loads declarative form definitions from YAML or JSON and
// compiles them into validator rules.
//
//	forms:
//	  signup:
//	    fields:
//	      - name: username
//	        rules:
//	          - type: is-required
//	          - type: length
//	            min: 3
//	            max: 16
//	      - name: slug
//	        rules:
//	          - type: has-format
//	            pattern: "^[a-z0-9-]+$"
//	            message: Only lowercase letters, digits and dashes
//
// Rule order in the file is evaluation order. length and has-min-max require
// max; has-format requires pattern. Any kind added with validator.Register is
// accepted as well.
//
//	doc, err := schema.LoadFile(ctx, "forms.yaml")
//	if err != nil {
//	    return err
//	}
//	reg, err := doc.Compile()
//	if err != nil {
//	    return err
//	}
//	f, err := reg.NewForm("signup")
package schema
