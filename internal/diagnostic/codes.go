package diagnostic

// Diagnostic codes.
const (
	CodeInvalidCount         = "invalid_count"
	CodeEmptyEnum            = "empty_enum"
	CodeOverrideRejected     = "override_rejected"
	CodeOverrideInvalid      = "override_invalid"
	CodeOverrideMalformed    = "override_malformed"
	CodeDirectiveMalformed   = "directive_malformed"
	CodeUnresolvedField      = "unresolved_field"
	CodeUnknownOverrideField = "unknown_override_field"
	CodeNotApplicable        = "not_applicable"
	CodeRecursiveReference   = "recursive_reference"
	CodeDepthExceeded        = "depth_exceeded"
	CodeUntypedMember        = "untyped_member"
	CodePeerFailed           = "peer_failed"
)
