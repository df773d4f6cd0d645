// Package errors provides structured errors for the madking-api service.
//
// Every error carries a Code, which decides how a transport reports it, and
// optionally a Reason naming the domain failure kind (an item that is not in
// the inventory, a spell above the character's circle, a duplicate catalog
// name). Callers branch on reasons, never on message text.
//
// Creating errors:
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.Domainf(errors.ReasonMaxLevelReached, "character is already level %d", lvl)
//
// Wrapping keeps the code, reason and metadata of the cause:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Checking:
//
//	if errors.HasReason(err, errors.ReasonSpellAlreadyKnown) {
//	    ...
//	}
//
// Validation:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 10, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Repository layer:
//   - Return NotFound and AlreadyExists (duplicate key) errors
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Engine and orchestrator layers:
//   - Return domain reasons for rule violations
//   - Validate inputs before touching state
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Map codes with Code.HTTPStatus or ToGRPCError
//   - Log internal errors, never leak causes to clients
package errors
