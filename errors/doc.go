/*
Package errors provides semantic error types for the identity-map library.

The package defines the failure conditions of the core with specific
types that can be checked using the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrMissingIdentityField = errors.New("identity field missing from record")
	    ErrUnknownIdentity      = errors.New("identity value not loaded")
	    ErrDuplicateRelation    = errors.New("relation already registered")
	    ErrUnknownRelation      = errors.New("relation not registered")
	    ErrDuplicateType        = errors.New("type already registered")
	    ErrUnknownType          = errors.New("type not registered")
	)

Usage:

	entity, err := posts.LoadEntity(rec)
	if err != nil {
	    if errors.IsMissingIdentityField(err) {
	        // the record carried no identity value; nothing was loaded
	        return fmt.Errorf("bad row: %w", err)
	    }
	    return err
	}

Every other lookup miss — an identity never loaded, a field without an
index, a value with no match — is modeled as "no result" by the core,
never as an error.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
