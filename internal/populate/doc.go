// Package populate walks a schema graph and a runtime value in lockstep
// and fills the value's slots.
//
// Per node the engine:
//   - invokes the custom generator registered for the node, if any, and
//     reads the after-generate action from its hints;
//   - leaves present values alone unless the action permits filling them,
//     capped by the overwrite switch (see hints.Decide);
//   - applies the selector override targeting the node, which always
//     wins except over a generated value hinted hints.ActionKeep;
//   - recurses into the children of structural values.
//
// Values created by the engine are populated with hints.ActionFillAll.
// Cyclic and truncated nodes are left absent; collections whose element
// node is cyclic are created empty.
package populate
