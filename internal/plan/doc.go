// Package plan resolves a declaration into the ordered field list mocks are
// synthesized against.
//
// Resolution pipeline:
//  1. Collect stored members (at most one binding, no computed accessor)
//  2. Collect explicit constructors
//  3. No constructor: use the stored members (memberwise path)
//  4. Otherwise use the parameters of the constructor with the most parameters,
//     the first one in declaration order on ties (constructor path)
//  5. Attach overrides by exact field name; external overrides win
//  6. Check every override against the field type; rejected and invalid
//     overrides are reported and fall back to generated values
package plan
