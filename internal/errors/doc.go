// Package errors provides the structured error handling used across the
// module.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - HTTP status conversion for the content client
//   - Validation error helpers for constructor configs
//   - Type-safe error checking
//
// Creating errors:
//
//	err := errors.NotFound("dataset not found")
//	err := errors.FailedPreconditionf("'%s' seems to be an incomplete dataset", id)
//
// Wrapping errors:
//
//	if err := store.SaveDataset(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to write dataset")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // fall back to a fetch
//	}
//
// Validating configs:
//
//	vb := errors.NewValidationBuilder()
//	if c.Store == nil {
//	    vb.RequiredField("Store")
//	}
//	return vb.Build()
package errors
