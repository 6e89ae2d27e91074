// Package form binds named fields to validator rule lists and aggregates
// their statuses into a single form-level validity flag.
//
// Every call to Set re-validates the changed field with that field's rules,
// recomputes the form flag as the logical AND of all field flags and then
// notifies subscribers registered with Subscribe. Fields start untouched and
// count as invalid until validated, so a freshly created form with fields
// reports Valid() == false. ValidateAll forces validation of every field.
//
// # Usage
//
//	f, err := form.New([]form.Field{
//	    {Name: "email", Rules: []validator.Rule{validator.IsRequired()}},
//	    {Name: "name", Rules: []validator.Rule{validator.HasLength(validator.Constraints{Min: 2, Max: 64})}},
//	}, form.WithName("signup"), form.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	unsubscribe := f.Subscribe(func(c form.Change) {
//	    fmt.Println(c.Field, c.Status.Valid, c.FormValid)
//	})
//	defer unsubscribe()
//
//	f.Set("email", "user@example.com")
//	f.Set("name", "J")          // "Value is too short"
//	if err := f.Err(); err != nil {
//	    verrs := form.ExtractValidationErrors(err)
//	    msg, _ := verrs.Get("name")
//	}
package form
