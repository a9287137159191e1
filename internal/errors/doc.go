// Package errors provides the structured error type shared by the statblock
// service layers.
//
// Errors carry a Code, a user-facing Message, an optional Cause and
// free-form metadata:
//
//	err := errors.NotFoundf("creature %s not found", id).
//	    WithMeta("creature_id", id)
//
// Wrapping keeps the code of an inner *Error, and turns anything else into
// CodeInternal:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to store creature")
//	}
//
// Constructors validate their Config with the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
//
// Handlers convert with ToGRPCError, and clients reverse the conversion
// with FromGRPCError. Metadata travels as a google.rpc.ErrorInfo detail.
//
// The parser never returns errors for malformed statblock text. Missing or
// unreadable fields are left empty and only contract violations surface here.
package errors
